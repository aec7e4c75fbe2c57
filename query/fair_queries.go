package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// FairListInput has no parameters; the store always returns every fair.
type FairListInput struct{}

// FairListQuery returns all career fairs in ascending date order.
type FairListQuery struct {
	repo types.FairRepository
}

// NewFairListQuery constructs the query helper.
func NewFairListQuery(repo types.FairRepository) *FairListQuery {
	return &FairListQuery{repo: repo}
}

var _ gocommand.Querier[FairListInput, []types.CareerFair] = (*FairListQuery)(nil)

// Query lists the fairs.
func (q *FairListQuery) Query(ctx context.Context, _ FairListInput) ([]types.CareerFair, error) {
	if q.repo == nil {
		return nil, types.ErrMissingFairRepository
	}
	return q.repo.ListFairs(ctx)
}

// FairDetailInput identifies one fair.
type FairDetailInput struct {
	FairID uuid.UUID
}

// FairDetailQuery returns a single fair, or nil when it does not exist.
type FairDetailQuery struct {
	repo types.FairRepository
}

// NewFairDetailQuery constructs the query helper.
func NewFairDetailQuery(repo types.FairRepository) *FairDetailQuery {
	return &FairDetailQuery{repo: repo}
}

var _ gocommand.Querier[FairDetailInput, *types.CareerFair] = (*FairDetailQuery)(nil)

// Query fetches the fair.
func (q *FairDetailQuery) Query(ctx context.Context, input FairDetailInput) (*types.CareerFair, error) {
	if q.repo == nil {
		return nil, types.ErrMissingFairRepository
	}
	if input.FairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	return q.repo.GetFair(ctx, input.FairID)
}
