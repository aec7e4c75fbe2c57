package command

import (
	"context"
	"strings"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// ChecklistCommandConfig wires dependencies for checklist commands.
type ChecklistCommandConfig struct {
	Repository types.ChecklistRepository
	Hooks      types.Hooks
	Clock      types.Clock
	IDGen      types.IDGenerator
}

// ChecklistItemSaveInput captures a checklist item create-or-replace payload.
// A new item (zero Item.ID) with a zero Item.Order is appended after the
// fair's current last item; pass a non-zero Item.Order to pin a position.
// Position zero of a non-empty checklist cannot be claimed through this
// command, only through the seeded defaults.
type ChecklistItemSaveInput struct {
	Item   types.ChecklistItem
	Result *types.ChecklistItem
}

// ChecklistItemSaveCommand upserts a single checklist item.
type ChecklistItemSaveCommand struct {
	repo  types.ChecklistRepository
	hooks types.Hooks
	clock types.Clock
	idGen types.IDGenerator
}

// NewChecklistItemSaveCommand constructs the handler.
func NewChecklistItemSaveCommand(cfg ChecklistCommandConfig) *ChecklistItemSaveCommand {
	return &ChecklistItemSaveCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
		idGen: safeIDGen(cfg.IDGen),
	}
}

var _ gocommand.Commander[ChecklistItemSaveInput] = (*ChecklistItemSaveCommand)(nil)

// Execute validates and persists the checklist item.
func (c *ChecklistItemSaveCommand) Execute(ctx context.Context, input ChecklistItemSaveInput) error {
	if c.repo == nil {
		return types.ErrMissingChecklistRepository
	}
	if strings.TrimSpace(input.Item.Text) == "" {
		return ErrItemTextRequired
	}
	if input.Item.CareerFairID == uuid.Nil {
		return ErrFairIDRequired
	}

	item := input.Item
	if item.ID == uuid.Nil {
		item.ID = c.idGen.UUID()
		// New items without an explicit position go to the end of the list.
		if item.Order == 0 {
			next, err := c.repo.NextOrder(ctx, item.CareerFairID)
			if err != nil {
				return err
			}
			item.Order = next
		}
	}

	saved, err := c.repo.SaveItem(ctx, item)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitChecklistHook(ctx, c.hooks, types.ChecklistEvent{
		ItemID:       item.ID,
		CareerFairID: item.CareerFairID,
		Action:       "checklist.save",
		OccurredAt:   now(c.clock),
	})
	return nil
}

// ChecklistToggleInput identifies the item whose completion flag flips.
type ChecklistToggleInput struct {
	ItemID uuid.UUID
	Result *types.ChecklistItem
}

// ChecklistToggleCommand flips an item's completion state as a store-side
// partial update: completing stamps CompletedAt, un-completing clears it.
// Exposing the toggle here keeps the read-modify-write window inside one
// handler instead of spreading it across UI callers.
type ChecklistToggleCommand struct {
	repo  types.ChecklistRepository
	hooks types.Hooks
	clock types.Clock
}

// NewChecklistToggleCommand constructs the handler.
func NewChecklistToggleCommand(cfg ChecklistCommandConfig) *ChecklistToggleCommand {
	return &ChecklistToggleCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ChecklistToggleInput] = (*ChecklistToggleCommand)(nil)

// Execute flips the completion flag. The read and the write are still two
// storage calls; overlapping toggles resolve last-write-wins.
func (c *ChecklistToggleCommand) Execute(ctx context.Context, input ChecklistToggleInput) error {
	if c.repo == nil {
		return types.ErrMissingChecklistRepository
	}
	if input.ItemID == uuid.Nil {
		return ErrItemIDRequired
	}
	item, err := c.repo.GetItem(ctx, input.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	item.IsCompleted = !item.IsCompleted
	if item.IsCompleted {
		completedAt := now(c.clock)
		item.CompletedAt = &completedAt
	} else {
		item.CompletedAt = nil
	}

	saved, err := c.repo.SaveItem(ctx, *item)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitChecklistHook(ctx, c.hooks, types.ChecklistEvent{
		ItemID:       item.ID,
		CareerFairID: item.CareerFairID,
		Action:       "checklist.toggle",
		OccurredAt:   now(c.clock),
	})
	return nil
}

// ChecklistItemDeleteInput identifies the item to remove.
type ChecklistItemDeleteInput struct {
	ItemID       uuid.UUID
	CareerFairID uuid.UUID
}

// ChecklistItemDeleteCommand removes one checklist item. Remaining items keep
// their display order; gaps are expected.
type ChecklistItemDeleteCommand struct {
	repo  types.ChecklistRepository
	hooks types.Hooks
	clock types.Clock
}

// NewChecklistItemDeleteCommand constructs the handler.
func NewChecklistItemDeleteCommand(cfg ChecklistCommandConfig) *ChecklistItemDeleteCommand {
	return &ChecklistItemDeleteCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ChecklistItemDeleteInput] = (*ChecklistItemDeleteCommand)(nil)

// Execute removes the item. Deleting a missing id succeeds.
func (c *ChecklistItemDeleteCommand) Execute(ctx context.Context, input ChecklistItemDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingChecklistRepository
	}
	if input.ItemID == uuid.Nil {
		return ErrItemIDRequired
	}
	if err := c.repo.DeleteItem(ctx, input.ItemID); err != nil {
		return err
	}
	emitChecklistHook(ctx, c.hooks, types.ChecklistEvent{
		ItemID:       input.ItemID,
		CareerFairID: input.CareerFairID,
		Action:       "checklist.delete",
		OccurredAt:   now(c.clock),
	})
	return nil
}
