package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/fairbuddy/go-fairbuddy/settings"
	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-masker"
)

// SettingsCommandConfig wires dependencies for the settings command.
type SettingsCommandConfig struct {
	Repository types.SettingsRepository
	Hooks      types.Hooks
	Clock      types.Clock
	Masker     *masker.Masker
}

// SettingsUpdateInput captures the new singleton settings payload.
type SettingsUpdateInput struct {
	Settings types.Settings
	Result   *types.Settings
}

// SettingsUpdateCommand replaces the singleton settings record. The hook
// event carries a masked copy so the AI credential never leaks into logs.
type SettingsUpdateCommand struct {
	repo  types.SettingsRepository
	hooks types.Hooks
	clock types.Clock
	mask  *masker.Masker
}

// NewSettingsUpdateCommand constructs the handler.
func NewSettingsUpdateCommand(cfg SettingsCommandConfig) *SettingsUpdateCommand {
	return &SettingsUpdateCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
		mask:  cfg.Masker,
	}
}

var _ gocommand.Commander[SettingsUpdateInput] = (*SettingsUpdateCommand)(nil)

// Execute validates and persists the settings payload.
func (c *SettingsUpdateCommand) Execute(ctx context.Context, input SettingsUpdateInput) error {
	if c.repo == nil {
		return types.ErrMissingSettingsRepository
	}
	switch input.Settings.DefaultScanMethod {
	case types.ScanMethodOCR, types.ScanMethodGPT4o, types.ScanMethodManual, "":
	default:
		return ErrScanMethodInvalid
	}

	payload := input.Settings
	if payload.DefaultScanMethod == "" {
		payload.DefaultScanMethod = types.ScanMethodOCR
	}

	saved, err := c.repo.SaveSettings(ctx, payload)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	if saved != nil {
		emitSettingsHook(ctx, c.hooks, types.SettingsEvent{
			Action:     "settings.update",
			Settings:   settings.SanitizeSettings(c.mask, *saved),
			OccurredAt: now(c.clock),
		})
	}
	return nil
}
