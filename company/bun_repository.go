package company

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairbuddy/go-fairbuddy/image"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed company repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
}

type companyStore interface {
	repository.Repository[*Record]
}

// Repository implements types.CompanyRepository using Bun. Deleting a company
// removes its images in the same transaction.
type Repository struct {
	companyStore
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default company repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("company: db required")
	}
	repo := cfg.Repository
	if repo == nil {
		repo = repository.NewRepository(cfg.DB, repository.ModelHandlers[*Record]{
			NewRecord: func() *Record { return &Record{} },
			GetID: func(rec *Record) uuid.UUID {
				if rec == nil {
					return uuid.Nil
				}
				return rec.ID
			},
			SetID: func(rec *Record, id uuid.UUID) {
				if rec != nil {
					rec.ID = id
				}
			},
		})
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}

	return &Repository{
		companyStore: repo,
		db:           cfg.DB,
		clock:        clock,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.CompanyRepository        = (*Repository)(nil)
)

// GetCompany returns the company or nil when it does not exist.
func (r *Repository) GetCompany(ctx context.Context, id uuid.UUID) (*types.Company, error) {
	if id == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	rec, err := r.GetByID(ctx, id.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(rec), nil
}

// ListForFair returns every company captured at the fair, via the
// career_fair_id index.
func (r *Repository) ListForFair(ctx context.Context, careerFairID uuid.UUID) ([]types.Company, error) {
	if careerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("career_fair_id = ?", careerFairID).
			OrderExpr("created_at ASC")
	})
	if err != nil {
		return nil, err
	}
	companies := make([]types.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, *toDomain(row))
	}
	return companies, nil
}

// SaveCompany upserts the company by primary key. The stored row is fully
// replaced; callers own the read-modify-write cycle for partial edits.
func (r *Repository) SaveCompany(ctx context.Context, company types.Company) (*types.Company, error) {
	if company.ID == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	if company.CareerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	now := r.clock.Now()
	rec := fromDomain(company)
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	existing, err := r.GetByID(ctx, company.ID.String())
	switch {
	case err == nil && existing != nil:
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = existing.CreatedAt
		}
		updated, err := r.Update(ctx, rec)
		if err != nil {
			return nil, err
		}
		return toDomain(updated), nil
	case repository.IsRecordNotFound(err):
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		created, err := r.Create(ctx, rec)
		if err != nil {
			return nil, err
		}
		return toDomain(created), nil
	default:
		return nil, err
	}
}

// DeleteCompany removes the company and its images in one transaction.
// Deleting a missing id is a no-op.
func (r *Repository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return types.ErrCompanyIDRequired
	}
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*image.Record)(nil)).
			Where("company_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*Record)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}

// SearchCompanies filters the fair's companies in memory with a
// case-insensitive match against name, positions, notes, and tags. The full
// per-fair collection is small enough that a linear scan beats maintaining a
// text index.
func (r *Repository) SearchCompanies(ctx context.Context, careerFairID uuid.UUID, query string) ([]types.Company, error) {
	companies, err := r.ListForFair(ctx, careerFairID)
	if err != nil {
		return nil, err
	}
	matched := make([]types.Company, 0, len(companies))
	for _, c := range companies {
		if c.Matches(query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func fromDomain(company types.Company) *Record {
	return &Record{
		ID:                   company.ID,
		CareerFairID:         company.CareerFairID,
		CompanyName:          company.CompanyName,
		BoothNumber:          company.BoothNumber,
		Positions:            cloneStrings(company.Positions),
		ContactInfo:          company.ContactInfo,
		ApplicationDeadline:  company.ApplicationDeadline,
		Requirements:         cloneStrings(company.Requirements),
		WebsiteURL:           company.WebsiteURL,
		CareersPageURL:       company.CareersPageURL,
		UserNotes:            company.UserNotes,
		ConversationSummary:  company.ConversationSummary,
		Impressions:          company.Impressions,
		ActionItems:          cloneStrings(company.ActionItems),
		Priority:             string(company.Priority),
		Tags:                 cloneStrings(company.Tags),
		ScannedImages:        cloneStrings(company.ScannedImages),
		VoiceNotes:           cloneVoiceNotes(company.VoiceNotes),
		ExtractionMethod:     string(company.ExtractionMethod),
		ExtractionConfidence: company.ExtractionConfidence,
		RawExtractedText:     company.RawExtractedText,
		FollowUpStatus:       company.FollowUpStatus,
		CreatedAt:            company.CreatedAt,
		UpdatedAt:            company.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.Company {
	if rec == nil {
		return nil
	}
	return &types.Company{
		ID:                   rec.ID,
		CareerFairID:         rec.CareerFairID,
		CompanyName:          rec.CompanyName,
		BoothNumber:          rec.BoothNumber,
		Positions:            cloneStrings(rec.Positions),
		ContactInfo:          rec.ContactInfo,
		ApplicationDeadline:  rec.ApplicationDeadline,
		Requirements:         cloneStrings(rec.Requirements),
		WebsiteURL:           rec.WebsiteURL,
		CareersPageURL:       rec.CareersPageURL,
		UserNotes:            rec.UserNotes,
		ConversationSummary:  rec.ConversationSummary,
		Impressions:          rec.Impressions,
		ActionItems:          cloneStrings(rec.ActionItems),
		Priority:             types.Priority(rec.Priority),
		Tags:                 cloneStrings(rec.Tags),
		ScannedImages:        cloneStrings(rec.ScannedImages),
		VoiceNotes:           cloneVoiceNotes(rec.VoiceNotes),
		ExtractionMethod:     types.ScanMethod(rec.ExtractionMethod),
		ExtractionConfidence: rec.ExtractionConfidence,
		RawExtractedText:     rec.RawExtractedText,
		FollowUpStatus:       rec.FollowUpStatus,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
	}
}

func cloneStrings(origin []string) []string {
	if len(origin) == 0 {
		return nil
	}
	out := make([]string, len(origin))
	copy(out, origin)
	return out
}

func cloneVoiceNotes(origin []types.VoiceNote) []types.VoiceNote {
	if len(origin) == 0 {
		return nil
	}
	out := make([]types.VoiceNote, len(origin))
	copy(out, origin)
	return out
}
