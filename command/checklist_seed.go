package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// ChecklistSeedInput identifies the fair whose checklist should be seeded.
type ChecklistSeedInput struct {
	CareerFairID uuid.UUID
	Result       *[]types.ChecklistItem
}

// ChecklistSeedCommand populates an empty checklist with the default
// preparation template. A checklist that already has items is left alone;
// the repository runs the check and the insert in one transaction.
type ChecklistSeedCommand struct {
	repo  types.ChecklistRepository
	hooks types.Hooks
	clock types.Clock
}

// NewChecklistSeedCommand constructs the handler.
func NewChecklistSeedCommand(cfg ChecklistCommandConfig) *ChecklistSeedCommand {
	return &ChecklistSeedCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ChecklistSeedInput] = (*ChecklistSeedCommand)(nil)

// Execute seeds the checklist when empty and reports the resulting items.
func (c *ChecklistSeedCommand) Execute(ctx context.Context, input ChecklistSeedInput) error {
	if c.repo == nil {
		return types.ErrMissingChecklistRepository
	}
	if input.CareerFairID == uuid.Nil {
		return ErrFairIDRequired
	}
	items, err := c.repo.SeedDefaults(ctx, input.CareerFairID)
	if err != nil {
		return err
	}
	if input.Result != nil {
		*input.Result = items
	}
	emitChecklistHook(ctx, c.hooks, types.ChecklistEvent{
		CareerFairID: input.CareerFairID,
		Action:       "checklist.seed",
		OccurredAt:   now(c.clock),
	})
	return nil
}
