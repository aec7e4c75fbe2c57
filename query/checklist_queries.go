package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// ChecklistItemsInput scopes the checklist read to one fair.
type ChecklistItemsInput struct {
	CareerFairID uuid.UUID
}

// ChecklistItemsQuery returns a fair's checklist in ascending display order.
type ChecklistItemsQuery struct {
	repo types.ChecklistRepository
}

// NewChecklistItemsQuery constructs the query helper.
func NewChecklistItemsQuery(repo types.ChecklistRepository) *ChecklistItemsQuery {
	return &ChecklistItemsQuery{repo: repo}
}

var _ gocommand.Querier[ChecklistItemsInput, []types.ChecklistItem] = (*ChecklistItemsQuery)(nil)

// Query lists the checklist items.
func (q *ChecklistItemsQuery) Query(ctx context.Context, input ChecklistItemsInput) ([]types.ChecklistItem, error) {
	if q.repo == nil {
		return nil, types.ErrMissingChecklistRepository
	}
	if input.CareerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	return q.repo.ListForFair(ctx, input.CareerFairID)
}
