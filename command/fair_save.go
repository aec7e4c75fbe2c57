package command

import (
	"context"
	"strings"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// FairCommandConfig wires dependencies for career fair commands.
type FairCommandConfig struct {
	Repository types.FairRepository
	Hooks      types.Hooks
	Clock      types.Clock
	IDGen      types.IDGenerator
}

// FairSaveInput captures a fair create-or-replace payload. When the ID is
// nil a fresh identifier is generated and reported through Result.
type FairSaveInput struct {
	Fair   types.CareerFair
	Result *types.CareerFair
}

// FairSaveCommand upserts a career fair.
type FairSaveCommand struct {
	repo  types.FairRepository
	hooks types.Hooks
	clock types.Clock
	idGen types.IDGenerator
}

// NewFairSaveCommand constructs the handler.
func NewFairSaveCommand(cfg FairCommandConfig) *FairSaveCommand {
	return &FairSaveCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
		idGen: safeIDGen(cfg.IDGen),
	}
}

var _ gocommand.Commander[FairSaveInput] = (*FairSaveCommand)(nil)

// Execute validates and persists the fair payload.
func (c *FairSaveCommand) Execute(ctx context.Context, input FairSaveInput) error {
	if c.repo == nil {
		return types.ErrMissingFairRepository
	}
	if strings.TrimSpace(input.Fair.Name) == "" {
		return ErrFairNameRequired
	}
	if input.Fair.Date.IsZero() {
		return ErrFairDateRequired
	}

	fair := input.Fair
	if fair.ID == uuid.Nil {
		fair.ID = c.idGen.UUID()
	}
	fair.UpdatedAt = now(c.clock)

	saved, err := c.repo.SaveFair(ctx, fair)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitFairHook(ctx, c.hooks, types.FairEvent{
		FairID:     fair.ID,
		Action:     "fair.save",
		OccurredAt: now(c.clock),
	})
	return nil
}
