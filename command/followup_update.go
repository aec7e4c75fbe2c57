package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// FollowUpUpdateInput replaces a company's follow-up status sub-record.
type FollowUpUpdateInput struct {
	CompanyID uuid.UUID
	Status    types.FollowUpStatus
	Result    *types.Company
}

// FollowUpUpdateCommand rewrites the follow-up tracking block of a company
// without the caller having to round-trip the whole record. The rest of the
// company is read back and re-saved verbatim, so two overlapping edits to
// different sections still resolve last-write-wins.
type FollowUpUpdateCommand struct {
	repo  types.CompanyRepository
	hooks types.Hooks
	clock types.Clock
}

// NewFollowUpUpdateCommand constructs the handler.
func NewFollowUpUpdateCommand(cfg CompanyCommandConfig) *FollowUpUpdateCommand {
	return &FollowUpUpdateCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[FollowUpUpdateInput] = (*FollowUpUpdateCommand)(nil)

// Execute swaps in the new follow-up status.
func (c *FollowUpUpdateCommand) Execute(ctx context.Context, input FollowUpUpdateInput) error {
	if c.repo == nil {
		return types.ErrMissingCompanyRepository
	}
	if input.CompanyID == uuid.Nil {
		return ErrCompanyIDRequired
	}
	company, err := c.repo.GetCompany(ctx, input.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	company.FollowUpStatus = input.Status
	company.UpdatedAt = now(c.clock)

	saved, err := c.repo.SaveCompany(ctx, *company)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitCompanyHook(ctx, c.hooks, types.CompanyEvent{
		CompanyID:    company.ID,
		CareerFairID: company.CareerFairID,
		Action:       "company.followup",
		OccurredAt:   now(c.clock),
	})
	return nil
}
