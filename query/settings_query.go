package query

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/fairbuddy/go-fairbuddy/settings"
	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-masker"
)

// SettingsDetailInput selects how the credential is exposed. Masked reads
// feed display surfaces; unmasked reads feed the scan pipeline that needs
// the real key.
type SettingsDetailInput struct {
	Masked bool
}

// SettingsDetailQuery returns the singleton settings record, or nil when the
// user has never saved settings.
type SettingsDetailQuery struct {
	repo types.SettingsRepository
	mask *masker.Masker
}

// NewSettingsDetailQuery constructs the query helper.
func NewSettingsDetailQuery(repo types.SettingsRepository, mask *masker.Masker) *SettingsDetailQuery {
	return &SettingsDetailQuery{repo: repo, mask: mask}
}

var _ gocommand.Querier[SettingsDetailInput, *types.Settings] = (*SettingsDetailQuery)(nil)

// Query fetches the settings.
func (q *SettingsDetailQuery) Query(ctx context.Context, input SettingsDetailInput) (*types.Settings, error) {
	if q.repo == nil {
		return nil, types.ErrMissingSettingsRepository
	}
	stored, err := q.repo.GetSettings(ctx)
	if err != nil || stored == nil {
		return stored, err
	}
	if input.Masked {
		masked := settings.SanitizeSettings(q.mask, *stored)
		return &masked, nil
	}
	return stored, nil
}
