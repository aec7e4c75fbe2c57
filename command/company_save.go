package command

import (
	"context"
	"strings"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// CompanyCommandConfig wires dependencies for company commands.
type CompanyCommandConfig struct {
	Repository types.CompanyRepository
	Hooks      types.Hooks
	Clock      types.Clock
	IDGen      types.IDGenerator
}

// CompanySaveInput captures a company create-or-replace payload. The payload
// is stored as given; extraction quality is the caller's concern.
type CompanySaveInput struct {
	Company types.Company
	Result  *types.Company
}

// CompanySaveCommand upserts a company record.
type CompanySaveCommand struct {
	repo  types.CompanyRepository
	hooks types.Hooks
	clock types.Clock
	idGen types.IDGenerator
}

// NewCompanySaveCommand constructs the handler.
func NewCompanySaveCommand(cfg CompanyCommandConfig) *CompanySaveCommand {
	return &CompanySaveCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
		idGen: safeIDGen(cfg.IDGen),
	}
}

var _ gocommand.Commander[CompanySaveInput] = (*CompanySaveCommand)(nil)

// Execute validates and persists the company payload.
func (c *CompanySaveCommand) Execute(ctx context.Context, input CompanySaveInput) error {
	if c.repo == nil {
		return types.ErrMissingCompanyRepository
	}
	if strings.TrimSpace(input.Company.CompanyName) == "" {
		return ErrCompanyNameRequired
	}
	if input.Company.CareerFairID == uuid.Nil {
		return ErrFairIDRequired
	}

	company := input.Company
	if company.ID == uuid.Nil {
		company.ID = c.idGen.UUID()
	}
	if company.Priority == "" {
		company.Priority = types.PriorityMedium
	}
	company.UpdatedAt = now(c.clock)

	saved, err := c.repo.SaveCompany(ctx, company)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitCompanyHook(ctx, c.hooks, types.CompanyEvent{
		CompanyID:    company.ID,
		CareerFairID: company.CareerFairID,
		Action:       "company.save",
		OccurredAt:   now(c.clock),
	})
	return nil
}
