package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
)

// DashboardStatsInput has no parameters.
type DashboardStatsInput struct{}

// DashboardStats summarizes the whole local store for the dashboard view.
type DashboardStats struct {
	TotalFairs             int
	TotalCompanies         int
	HighPriorityCompanies  int
	PendingFollowUps       int
	ChecklistItemsTotal    int
	ChecklistItemsComplete int
}

// DashboardStatsQuery aggregates counts across fairs, companies, and
// checklists. Everything is computed from repository reads; the expected
// dataset size does not warrant dedicated counters.
type DashboardStatsQuery struct {
	fairs     types.FairRepository
	companies types.CompanyRepository
	checklist types.ChecklistRepository
}

// NewDashboardStatsQuery constructs the query helper.
func NewDashboardStatsQuery(fairs types.FairRepository, companies types.CompanyRepository, checklist types.ChecklistRepository) *DashboardStatsQuery {
	return &DashboardStatsQuery{fairs: fairs, companies: companies, checklist: checklist}
}

var _ gocommand.Querier[DashboardStatsInput, DashboardStats] = (*DashboardStatsQuery)(nil)

// Query computes the dashboard summary.
func (q *DashboardStatsQuery) Query(ctx context.Context, _ DashboardStatsInput) (DashboardStats, error) {
	if q.fairs == nil {
		return DashboardStats{}, types.ErrMissingFairRepository
	}
	if q.companies == nil {
		return DashboardStats{}, types.ErrMissingCompanyRepository
	}
	if q.checklist == nil {
		return DashboardStats{}, types.ErrMissingChecklistRepository
	}

	fairs, err := q.fairs.ListFairs(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{TotalFairs: len(fairs)}
	for _, fair := range fairs {
		companies, err := q.companies.ListForFair(ctx, fair.ID)
		if err != nil {
			return DashboardStats{}, err
		}
		stats.TotalCompanies += len(companies)
		for _, company := range companies {
			if company.Priority == types.PriorityHigh {
				stats.HighPriorityCompanies++
			}
			if company.FollowUpStatus.Pending() {
				stats.PendingFollowUps++
			}
		}

		items, err := q.checklist.ListForFair(ctx, fair.ID)
		if err != nil {
			return DashboardStats{}, err
		}
		stats.ChecklistItemsTotal += len(items)
		for _, item := range items {
			if item.IsCompleted {
				stats.ChecklistItemsComplete++
			}
		}
	}
	return stats, nil
}
