package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// FairDeleteInput identifies the fair to remove.
type FairDeleteInput struct {
	FairID uuid.UUID
}

// FairDeleteCommand removes a fair and, through the repository cascade, its
// checklist items, companies, and images. Deleting a missing fair succeeds.
type FairDeleteCommand struct {
	repo  types.FairRepository
	hooks types.Hooks
	clock types.Clock
}

// NewFairDeleteCommand constructs the handler.
func NewFairDeleteCommand(cfg FairCommandConfig) *FairDeleteCommand {
	return &FairDeleteCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[FairDeleteInput] = (*FairDeleteCommand)(nil)

// Execute removes the fair aggregate.
func (c *FairDeleteCommand) Execute(ctx context.Context, input FairDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingFairRepository
	}
	if input.FairID == uuid.Nil {
		return ErrFairIDRequired
	}
	if err := c.repo.DeleteFair(ctx, input.FairID); err != nil {
		return err
	}
	emitFairHook(ctx, c.hooks, types.FairEvent{
		FairID:     input.FairID,
		Action:     "fair.delete",
		OccurredAt: now(c.clock),
	})
	return nil
}
