package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// ImageListInput scopes the image read to one company.
type ImageListInput struct {
	CompanyID uuid.UUID
}

// ImageListQuery returns a company's scanned images.
type ImageListQuery struct {
	repo types.ImageRepository
}

// NewImageListQuery constructs the query helper.
func NewImageListQuery(repo types.ImageRepository) *ImageListQuery {
	return &ImageListQuery{repo: repo}
}

var _ gocommand.Querier[ImageListInput, []types.ImageRecord] = (*ImageListQuery)(nil)

// Query lists the images.
func (q *ImageListQuery) Query(ctx context.Context, input ImageListInput) ([]types.ImageRecord, error) {
	if q.repo == nil {
		return nil, types.ErrMissingImageRepository
	}
	if input.CompanyID == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	return q.repo.ListForCompany(ctx, input.CompanyID)
}
