package image

import (
	"context"
	"errors"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed image repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
}

type imageStore interface {
	repository.Repository[*Record]
}

// Repository implements types.ImageRepository using Bun.
type Repository struct {
	imageStore
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default image repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("image: db required")
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
		imageStore: repo,
		db:         cfg.DB,
		clock:      clock,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.ImageRepository          = (*Repository)(nil)
)

// GetImage returns the image record or nil when it does not exist.
func (r *Repository) GetImage(ctx context.Context, id uuid.UUID) (*types.ImageRecord, error) {
	if id == uuid.Nil {
		return nil, types.ErrImageIDRequired
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

// ListForCompany returns the company's scans via the company_id index.
func (r *Repository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]types.ImageRecord, error) {
	if companyID == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("company_id = ?", companyID).
			OrderExpr("created_at ASC")
	})
	if err != nil {
		return nil, err
	}
	images := make([]types.ImageRecord, 0, len(rows))
	for _, row := range rows {
		images = append(images, *toDomain(row))
	}
	return images, nil
}

// SaveImage upserts the image by primary key.
func (r *Repository) SaveImage(ctx context.Context, img types.ImageRecord) (*types.ImageRecord, error) {
	if img.ID == uuid.Nil {
		return nil, types.ErrImageIDRequired
	}
	if img.CompanyID == uuid.Nil {
		return nil, types.ErrCompanyIDRequired
	}
	rec := fromDomain(img)

	existing, err := r.GetByID(ctx, img.ID.String())
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

// DeleteImage removes the image. Deleting a missing id is a no-op.
func (r *Repository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return types.ErrImageIDRequired
	}
	_, err := r.db.NewDelete().
		Model((*Record)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func fromDomain(img types.ImageRecord) *Record {
	return &Record{
		ID:        img.ID,
		CompanyID: img.CompanyID,
		Payload:   clonePayload(img.Payload),
		MimeType:  img.MimeType,
		CreatedAt: img.CreatedAt,
	}
}

func toDomain(rec *Record) *types.ImageRecord {
	if rec == nil {
		return nil
	}
	return &types.ImageRecord{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		Payload:   clonePayload(rec.Payload),
		MimeType:  rec.MimeType,
		CreatedAt: rec.CreatedAt,
	}
}

func clonePayload(origin []byte) []byte {
	if len(origin) == 0 {
		return nil
	}
	out := make([]byte, len(origin))
	copy(out, origin)
	return out
}
