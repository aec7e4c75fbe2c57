package fairbuddy

import "github.com/fairbuddy/go-fairbuddy/service"

// Re-export the service package entry point so consumers can do
// `fairbuddy.New(...)` without importing internal wiring helpers.
type (
	Service           = service.Service
	Config            = service.Config
	Commands          = service.Commands
	Queries           = service.Queries
	PersistenceConfig = service.PersistenceConfig
	ReconcileReport   = service.ReconcileReport
)

// New constructs the local store runtime using the provided configuration.
func New(cfg Config) *Service {
	return service.New(cfg)
}
