package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed settings repository.
type RepositoryConfig struct {
	DB    *bun.DB
	Clock types.Clock
}

// Repository implements types.SettingsRepository. The settings collection is
// a singleton, so the generic uuid-keyed repository does not apply; queries
// go straight through bun against the fixed key.
type Repository struct {
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default settings repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("settings: db required")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	return &Repository{db: cfg.DB, clock: clock}, nil
}

var _ types.SettingsRepository = (*Repository)(nil)

// GetSettings returns the singleton record, or nil when the user has never
// saved settings. Absence is not an error.
func (r *Repository) GetSettings(ctx context.Context) (*types.Settings, error) {
	rec := new(Record)
	err := r.db.NewSelect().
		Model(rec).
		Where("id = ?", types.SettingsID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(rec), nil
}

// SaveSettings upserts the singleton under the fixed key. Whatever id the
// caller submitted is overridden so duplicates cannot accumulate.
func (r *Repository) SaveSettings(ctx context.Context, settings types.Settings) (*types.Settings, error) {
	now := r.clock.Now()
	rec := fromDomain(settings)
	rec.ID = types.SettingsID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(rec).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("email = EXCLUDED.email").
		Set("openai_api_key = EXCLUDED.openai_api_key").
		Set("default_scan_method = EXCLUDED.default_scan_method").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return r.GetSettings(ctx)
}

func fromDomain(settings types.Settings) *Record {
	return &Record{
		ID:                settings.ID,
		Name:              settings.Name,
		Email:             settings.Email,
		OpenAIAPIKey:      settings.OpenAIAPIKey,
		DefaultScanMethod: string(settings.DefaultScanMethod),
		CreatedAt:         settings.CreatedAt,
		UpdatedAt:         settings.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.Settings {
	if rec == nil {
		return nil
	}
	return &types.Settings{
		ID:                rec.ID,
		Name:              rec.Name,
		Email:             rec.Email,
		OpenAIAPIKey:      rec.OpenAIAPIKey,
		DefaultScanMethod: types.ScanMethod(rec.DefaultScanMethod),
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
