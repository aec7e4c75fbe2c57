package fair

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairbuddy/go-fairbuddy/checklist"
	"github.com/fairbuddy/go-fairbuddy/company"
	"github.com/fairbuddy/go-fairbuddy/image"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed career fair repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
}

type fairStore interface {
	repository.Repository[*Record]
}

// Repository implements types.FairRepository using Bun. Deletes cascade to
// checklist items, companies, and images inside a single transaction so a
// success response never leaves orphaned children behind.
type Repository struct {
	fairStore
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default career fair repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("fair: db required")
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
		fairStore: repo,
		db:        cfg.DB,
		clock:     clock,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.FairRepository           = (*Repository)(nil)
)

// GetFair returns the career fair or nil when it does not exist.
func (r *Repository) GetFair(ctx context.Context, id uuid.UUID) (*types.CareerFair, error) {
	if id == uuid.Nil {
		return nil, types.ErrFairIDRequired
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

// ListFairs returns all career fairs in ascending date order. The order is
// backed by the date index, not re-sorted in memory.
func (r *Repository) ListFairs(ctx context.Context) ([]types.CareerFair, error) {
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("date ASC")
	})
	if err != nil {
		return nil, err
	}
	fairs := make([]types.CareerFair, 0, len(rows))
	for _, row := range rows {
		fairs = append(fairs, *toDomain(row))
	}
	return fairs, nil
}

// SaveFair upserts the fair by primary key. An existing record is fully
// replaced; there is no field-level merge.
func (r *Repository) SaveFair(ctx context.Context, fair types.CareerFair) (*types.CareerFair, error) {
	if fair.ID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	now := r.clock.Now()
	rec := fromDomain(fair)
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	existing, err := r.GetByID(ctx, fair.ID.String())
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

// DeleteFair removes the fair and every dependent record: its checklist
// items, its companies, and the images owned by those companies. Deleting a
// fair that does not exist is a no-op.
func (r *Repository) DeleteFair(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return types.ErrFairIDRequired
	}
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*checklist.Record)(nil)).
			Where("career_fair_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		companyIDs := tx.NewSelect().
			Model((*company.Record)(nil)).
			Column("id").
			Where("career_fair_id = ?", id)
		if _, err := tx.NewDelete().
			Model((*image.Record)(nil)).
			Where("company_id IN (?)", companyIDs).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().
			Model((*company.Record)(nil)).
			Where("career_fair_id = ?", id).
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

func fromDomain(fair types.CareerFair) *Record {
	return &Record{
		ID:          fair.ID,
		Name:        fair.Name,
		Date:        fair.Date,
		Location:    fair.Location,
		VenueMapURL: fair.VenueMapURL,
		Notes:       fair.Notes,
		CreatedAt:   fair.CreatedAt,
		UpdatedAt:   fair.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.CareerFair {
	if rec == nil {
		return nil
	}
	return &types.CareerFair{
		ID:          rec.ID,
		Name:        rec.Name,
		Date:        rec.Date,
		Location:    rec.Location,
		VenueMapURL: rec.VenueMapURL,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
