package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// CompanyDeleteInput identifies the company to remove.
type CompanyDeleteInput struct {
	CompanyID    uuid.UUID
	CareerFairID uuid.UUID
}

// CompanyDeleteCommand removes a company and, through the repository cascade,
// its image records. Deleting a missing company succeeds.
type CompanyDeleteCommand struct {
	repo  types.CompanyRepository
	hooks types.Hooks
	clock types.Clock
}

// NewCompanyDeleteCommand constructs the handler.
func NewCompanyDeleteCommand(cfg CompanyCommandConfig) *CompanyDeleteCommand {
	return &CompanyDeleteCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[CompanyDeleteInput] = (*CompanyDeleteCommand)(nil)

// Execute removes the company aggregate.
func (c *CompanyDeleteCommand) Execute(ctx context.Context, input CompanyDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingCompanyRepository
	}
	if input.CompanyID == uuid.Nil {
		return ErrCompanyIDRequired
	}
	if err := c.repo.DeleteCompany(ctx, input.CompanyID); err != nil {
		return err
	}
	emitCompanyHook(ctx, c.hooks, types.CompanyEvent{
		CompanyID:    input.CompanyID,
		CareerFairID: input.CareerFairID,
		Action:       "company.delete",
		OccurredAt:   now(c.clock),
	})
	return nil
}
