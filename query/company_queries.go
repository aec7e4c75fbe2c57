package query

import (
	"context"
	"strings"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// CompanyListInput scopes the company read to one fair.
type CompanyListInput struct {
	CareerFairID uuid.UUID
}

// CompanyListQuery returns every company captured at a fair.
type CompanyListQuery struct {
	repo types.CompanyRepository
}

// NewCompanyListQuery constructs the query helper.
func NewCompanyListQuery(repo types.CompanyRepository) *CompanyListQuery {
	return &CompanyListQuery{repo: repo}
}

var _ gocommand.Querier[CompanyListInput, []types.Company] = (*CompanyListQuery)(nil)

// Query lists the companies.
func (q *CompanyListQuery) Query(ctx context.Context, input CompanyListInput) ([]types.Company, error) {
	if q.repo == nil {
		return nil, types.ErrMissingCompanyRepository
	}
	if input.CareerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	return q.repo.ListForFair(ctx, input.CareerFairID)
}

// CompanyDetailInput identifies one company.
type CompanyDetailInput struct {
	CompanyID uuid.UUID
}

// CompanyDetailQuery returns a single company, or nil when it does not exist.
type CompanyDetailQuery struct {
	repo types.CompanyRepository
}

// NewCompanyDetailQuery constructs the query helper.
func NewCompanyDetailQuery(repo types.CompanyRepository) *CompanyDetailQuery {
	return &CompanyDetailQuery{repo: repo}
}

var _ gocommand.Querier[CompanyDetailInput, *types.Company] = (*CompanyDetailQuery)(nil)

// Query fetches the company.
func (q *CompanyDetailQuery) Query(ctx context.Context, input CompanyDetailInput) (*types.Company, error) {
	if q.repo == nil {
		return nil, types.ErrMissingCompanyRepository
	}
	if input.CompanyID == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	return q.repo.GetCompany(ctx, input.CompanyID)
}

// CompanySearchInput carries the fair scope and the free-text query.
type CompanySearchInput struct {
	CareerFairID uuid.UUID
	Query        string
}

// CompanySearchQuery filters a fair's companies against a case-insensitive
// text query. An empty query returns the full list, matching how the pages
// treat a cleared search box.
type CompanySearchQuery struct {
	repo types.CompanyRepository
}

// NewCompanySearchQuery constructs the query helper.
func NewCompanySearchQuery(repo types.CompanyRepository) *CompanySearchQuery {
	return &CompanySearchQuery{repo: repo}
}

var _ gocommand.Querier[CompanySearchInput, []types.Company] = (*CompanySearchQuery)(nil)

// Query runs the search.
func (q *CompanySearchQuery) Query(ctx context.Context, input CompanySearchInput) ([]types.Company, error) {
	if q.repo == nil {
		return nil, types.ErrMissingCompanyRepository
	}
	if input.CareerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	if strings.TrimSpace(input.Query) == "" {
		return q.repo.ListForFair(ctx, input.CareerFairID)
	}
	return q.repo.SearchCompanies(ctx, input.CareerFairID, input.Query)
}
