package checklist

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed checklist repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
	IDGen      types.IDGenerator
}

type checklistStore interface {
	repository.Repository[*Record]
}

// Repository implements types.ChecklistRepository using Bun.
type Repository struct {
	checklistStore
	db    *bun.DB
	clock types.Clock
	idGen types.IDGenerator
}

// NewRepository constructs the default checklist repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("checklist: db required")
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
	idGen := cfg.IDGen
	if idGen == nil {
		idGen = types.UUIDGenerator{}
	}

	return &Repository{
		checklistStore: repo,
		db:             cfg.DB,
		clock:          clock,
		idGen:          idGen,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.ChecklistRepository      = (*Repository)(nil)
)

// GetItem returns the checklist item or nil when it does not exist.
func (r *Repository) GetItem(ctx context.Context, id uuid.UUID) (*types.ChecklistItem, error) {
	if id == uuid.Nil {
		return nil, types.ErrItemIDRequired
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

// ListForFair returns the fair's checklist in ascending display order.
func (r *Repository) ListForFair(ctx context.Context, careerFairID uuid.UUID) ([]types.ChecklistItem, error) {
	if careerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("career_fair_id = ?", careerFairID).
			OrderExpr("display_order ASC")
	})
	if err != nil {
		return nil, err
	}
	items := make([]types.ChecklistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toDomain(row))
	}
	return items, nil
}

// NextOrder returns the display position after the fair's current last item,
// or zero for an empty checklist.
func (r *Repository) NextOrder(ctx context.Context, careerFairID uuid.UUID) (int, error) {
	if careerFairID == uuid.Nil {
		return 0, types.ErrFairIDRequired
	}
	var next int
	err := r.db.NewSelect().
		Model((*Record)(nil)).
		ColumnExpr("COALESCE(MAX(display_order) + 1, 0)").
		Where("career_fair_id = ?", careerFairID).
		Scan(ctx, &next)
	if err != nil {
		return 0, err
	}
	return next, nil
}

// SaveItem upserts the item by primary key, fully replacing an existing row.
func (r *Repository) SaveItem(ctx context.Context, item types.ChecklistItem) (*types.ChecklistItem, error) {
	if item.ID == uuid.Nil {
		return nil, types.ErrItemIDRequired
	}
	if item.CareerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	rec := fromDomain(item)

	existing, err := r.GetByID(ctx, item.ID.String())
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
			rec.CreatedAt = r.clock.Now()
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

// DeleteItem removes a single item. Deleting a missing id is a no-op.
func (r *Repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return types.ErrItemIDRequired
	}
	_, err := r.db.NewDelete().
		Model((*Record)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// DeleteForFair removes every item belonging to the fair.
func (r *Repository) DeleteForFair(ctx context.Context, careerFairID uuid.UUID) error {
	if careerFairID == uuid.Nil {
		return types.ErrFairIDRequired
	}
	_, err := r.db.NewDelete().
		Model((*Record)(nil)).
		Where("career_fair_id = ?", careerFairID).
		Exec(ctx)
	return err
}

// SeedDefaults inserts the default checklist template for a fair whose
// checklist is still empty, then returns the fair's items in display order.
// The count and insert run inside one transaction, and the insert backs off
// on the unique (career_fair_id, display_order) index, so two concurrent
// callers cannot double-seed even when both observe an empty checklist.
func (r *Repository) SeedDefaults(ctx context.Context, careerFairID uuid.UUID) ([]types.ChecklistItem, error) {
	if careerFairID == uuid.Nil {
		return nil, types.ErrFairIDRequired
	}
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().
			Model((*Record)(nil)).
			Where("career_fair_id = ?", careerFairID).
			Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		now := r.clock.Now()
		records := make([]*Record, 0, len(types.DefaultChecklistTemplate))
		for i, text := range types.DefaultChecklistTemplate {
			records = append(records, &Record{
				ID:           r.idGen.UUID(),
				CareerFairID: careerFairID,
				Text:         text,
				IsDefault:    true,
				Order:        i,
				CreatedAt:    now,
			})
		}
		_, err = tx.NewInsert().
			Model(&records).
			On("CONFLICT (career_fair_id, display_order) DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.ListForFair(ctx, careerFairID)
}

func fromDomain(item types.ChecklistItem) *Record {
	return &Record{
		ID:           item.ID,
		CareerFairID: item.CareerFairID,
		Text:         item.Text,
		IsCompleted:  item.IsCompleted,
		CompletedAt:  item.CompletedAt,
		IsDefault:    item.IsDefault,
		Order:        item.Order,
		CreatedAt:    item.CreatedAt,
	}
}

func toDomain(rec *Record) *types.ChecklistItem {
	if rec == nil {
		return nil
	}
	return &types.ChecklistItem{
		ID:           rec.ID,
		CareerFairID: rec.CareerFairID,
		Text:         rec.Text,
		IsCompleted:  rec.IsCompleted,
		CompletedAt:  rec.CompletedAt,
		IsDefault:    rec.IsDefault,
		Order:        rec.Order,
		CreatedAt:    rec.CreatedAt,
	}
}
