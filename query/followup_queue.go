package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
)

// FollowUpQueueInput has no parameters; the queue always spans every fair.
type FollowUpQueueInput struct{}

// FollowUpEntry pairs a company that still has open follow-up actions with
// the fair it was met at.
type FollowUpEntry struct {
	Fair    types.CareerFair
	Company types.Company
}

// FollowUpQueueQuery walks all fairs and surfaces the companies with any
// pending follow-up, in fair date order. This powers the follow-ups view.
type FollowUpQueueQuery struct {
	fairs     types.FairRepository
	companies types.CompanyRepository
}

// NewFollowUpQueueQuery constructs the query helper.
func NewFollowUpQueueQuery(fairs types.FairRepository, companies types.CompanyRepository) *FollowUpQueueQuery {
	return &FollowUpQueueQuery{fairs: fairs, companies: companies}
}

var _ gocommand.Querier[FollowUpQueueInput, []FollowUpEntry] = (*FollowUpQueueQuery)(nil)

// Query builds the pending follow-up queue.
func (q *FollowUpQueueQuery) Query(ctx context.Context, _ FollowUpQueueInput) ([]FollowUpEntry, error) {
	if q.fairs == nil {
		return nil, types.ErrMissingFairRepository
	}
	if q.companies == nil {
		return nil, types.ErrMissingCompanyRepository
	}
	fairs, err := q.fairs.ListFairs(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]FollowUpEntry, 0)
	for _, fair := range fairs {
		companies, err := q.companies.ListForFair(ctx, fair.ID)
		if err != nil {
			return nil, err
		}
		for _, company := range companies {
			if company.FollowUpStatus.Pending() {
				entries = append(entries, FollowUpEntry{Fair: fair, Company: company})
			}
		}
	}
	return entries, nil
}
