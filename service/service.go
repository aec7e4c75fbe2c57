package service

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fairbuddy/go-fairbuddy/checklist"
	"github.com/fairbuddy/go-fairbuddy/command"
	"github.com/fairbuddy/go-fairbuddy/company"
	"github.com/fairbuddy/go-fairbuddy/fair"
	"github.com/fairbuddy/go-fairbuddy/image"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/fairbuddy/go-fairbuddy/query"
	"github.com/fairbuddy/go-fairbuddy/settings"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-masker"
	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

// Service is the entry point for the local store. It owns the database
// handle for the process lifetime, runs schema migrations exactly once, and
// exposes command/query facades over the entity repositories.
type Service struct {
	cfg      Config
	db       *bun.DB
	client   *persistence.Client
	commands Commands
	queries  Queries

	fairRepo      *fair.Repository
	checklistRepo *checklist.Repository
	companyRepo   *company.Repository
	imageRepo     *image.Repository
	settingsRepo  *settings.Repository

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool
}

// Commands exposes the store command handlers.
type Commands struct {
	FairSave            *command.FairSaveCommand
	FairDelete          *command.FairDeleteCommand
	ChecklistSeed       *command.ChecklistSeedCommand
	ChecklistItemSave   *command.ChecklistItemSaveCommand
	ChecklistToggle     *command.ChecklistToggleCommand
	ChecklistItemDelete *command.ChecklistItemDeleteCommand
	CompanySave         *command.CompanySaveCommand
	CompanyDelete       *command.CompanyDeleteCommand
	FollowUpUpdate      *command.FollowUpUpdateCommand
	ImageSave           *command.ImageSaveCommand
	ImageDelete         *command.ImageDeleteCommand
	SettingsUpdate      *command.SettingsUpdateCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	FairList       *query.FairListQuery
	FairDetail     *query.FairDetailQuery
	ChecklistItems *query.ChecklistItemsQuery
	CompanyList    *query.CompanyListQuery
	CompanyDetail  *query.CompanyDetailQuery
	CompanySearch  *query.CompanySearchQuery
	ImageList      *query.ImageListQuery
	SettingsDetail *query.SettingsDetailQuery
	FollowUpQueue  *query.FollowUpQueueQuery
	DashboardStats *query.DashboardStatsQuery
}

// Config captures the dependencies the host supplies. Only DB is required;
// everything else has a working default.
type Config struct {
	DB          *sql.DB
	Persistence persistence.Config
	Migrations  []fs.FS
	Clock       types.Clock
	IDGenerator types.IDGenerator
	Logger      types.Logger
	Hooks       types.Hooks
	Masker      *masker.Masker
}

// PersistenceConfig is the default persistence.Config used when the host
// does not bring its own.
type PersistenceConfig struct {
	Debug          bool
	Driver         string
	Server         string
	PingTimeout    time.Duration
	OtelIdentifier string
}

func (c PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c PersistenceConfig) GetDriver() string             { return c.Driver }
func (c PersistenceConfig) GetServer() string             { return c.Server }
func (c PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c PersistenceConfig) GetOtelIdentifier() string     { return c.OtelIdentifier }

// New constructs a Service from the supplied configuration. The store is not
// usable until Init completes.
func New(cfg Config) *Service {
	return &Service{cfg: normalizeConfig(cfg)}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = types.SystemClock{}
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = types.UUIDGenerator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	if cfg.Masker == nil {
		cfg.Masker = settings.DefaultMasker()
	}
	if cfg.Persistence == nil {
		cfg.Persistence = PersistenceConfig{
			Driver:      "sqlite",
			Server:      "file:fairbuddy.db?_journal_mode=WAL&cache=shared&_fk=1",
			PingTimeout: 5 * time.Second,
		}
	}
	return cfg
}

// Init opens the store and applies schema migrations. It is idempotent and
// safe for concurrent callers: every caller before the first completion
// awaits the same single initialization pass, and the outcome, success or
// failure, is retained for all later calls.
func (s *Service) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.initialize(ctx)
		if s.initErr == nil {
			s.ready.Store(true)
		}
	})
	return s.initErr
}

func (s *Service) initialize(ctx context.Context) error {
	if s.cfg.DB == nil {
		return goerrors.New("fairbuddy: sql.DB handle required", goerrors.CategoryValidation).
			WithCode(goerrors.CodeBadRequest).
			WithTextCode("STORE_DB_REQUIRED")
	}

	registerModels()

	client, err := persistence.New(s.cfg.Persistence, s.cfg.DB, dialectFor(s.cfg.Persistence.GetDriver()))
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "fairbuddy: opening the store failed").
			WithCode(goerrors.CodeInternal).
			WithTextCode("STORE_OPEN_FAILED")
	}

	for _, fsys := range s.cfg.Migrations {
		client.RegisterDialectMigrations(
			fsys,
			persistence.WithDialectSourceLabel("."),
			persistence.WithValidationTargets("postgres", "sqlite"),
		)
	}

	if err := client.Migrate(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "fairbuddy: schema migration failed").
			WithCode(goerrors.CodeInternal).
			WithTextCode("STORE_MIGRATE_FAILED")
	}

	s.client = client
	s.db = client.DB()

	return s.wire()
}

// dialectFor picks the bun dialect matching the configured driver. Unknown
// and empty drivers fall back to sqlite, the embedded default.
func dialectFor(driver string) schema.Dialect {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pg", "pgx":
		return pgdialect.New()
	default:
		return sqlitedialect.New()
	}
}

var registerModelsOnce sync.Once

func registerModels() {
	registerModelsOnce.Do(func() {
		persistence.RegisterModel((*settings.Record)(nil))
		persistence.RegisterModel((*fair.Record)(nil))
		persistence.RegisterModel((*checklist.Record)(nil))
		persistence.RegisterModel((*company.Record)(nil))
		persistence.RegisterModel((*image.Record)(nil))
	})
}

func (s *Service) wire() error {
	var err error
	if s.fairRepo, err = fair.NewRepository(fair.RepositoryConfig{
		DB:    s.db,
		Clock: s.cfg.Clock,
	}); err != nil {
		return err
	}
	if s.checklistRepo, err = checklist.NewRepository(checklist.RepositoryConfig{
		DB:    s.db,
		Clock: s.cfg.Clock,
		IDGen: s.cfg.IDGenerator,
	}); err != nil {
		return err
	}
	if s.companyRepo, err = company.NewRepository(company.RepositoryConfig{
		DB:    s.db,
		Clock: s.cfg.Clock,
	}); err != nil {
		return err
	}
	if s.imageRepo, err = image.NewRepository(image.RepositoryConfig{
		DB:    s.db,
		Clock: s.cfg.Clock,
	}); err != nil {
		return err
	}
	if s.settingsRepo, err = settings.NewRepository(settings.RepositoryConfig{
		DB:    s.db,
		Clock: s.cfg.Clock,
	}); err != nil {
		return err
	}

	fairCfg := command.FairCommandConfig{
		Repository: s.fairRepo,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
		IDGen:      s.cfg.IDGenerator,
	}
	checklistCfg := command.ChecklistCommandConfig{
		Repository: s.checklistRepo,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
		IDGen:      s.cfg.IDGenerator,
	}
	companyCfg := command.CompanyCommandConfig{
		Repository: s.companyRepo,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
		IDGen:      s.cfg.IDGenerator,
	}
	imageCfg := command.ImageCommandConfig{
		Repository: s.imageRepo,
		Hooks:      s.cfg.Hooks,
		Clock:      s.cfg.Clock,
		IDGen:      s.cfg.IDGenerator,
	}

	s.commands = Commands{
		FairSave:            command.NewFairSaveCommand(fairCfg),
		FairDelete:          command.NewFairDeleteCommand(fairCfg),
		ChecklistSeed:       command.NewChecklistSeedCommand(checklistCfg),
		ChecklistItemSave:   command.NewChecklistItemSaveCommand(checklistCfg),
		ChecklistToggle:     command.NewChecklistToggleCommand(checklistCfg),
		ChecklistItemDelete: command.NewChecklistItemDeleteCommand(checklistCfg),
		CompanySave:         command.NewCompanySaveCommand(companyCfg),
		CompanyDelete:       command.NewCompanyDeleteCommand(companyCfg),
		FollowUpUpdate:      command.NewFollowUpUpdateCommand(companyCfg),
		ImageSave:           command.NewImageSaveCommand(imageCfg),
		ImageDelete:         command.NewImageDeleteCommand(imageCfg),
		SettingsUpdate: command.NewSettingsUpdateCommand(command.SettingsCommandConfig{
			Repository: s.settingsRepo,
			Hooks:      s.cfg.Hooks,
			Clock:      s.cfg.Clock,
			Masker:     s.cfg.Masker,
		}),
	}

	s.queries = Queries{
		FairList:       query.NewFairListQuery(s.fairRepo),
		FairDetail:     query.NewFairDetailQuery(s.fairRepo),
		ChecklistItems: query.NewChecklistItemsQuery(s.checklistRepo),
		CompanyList:    query.NewCompanyListQuery(s.companyRepo),
		CompanyDetail:  query.NewCompanyDetailQuery(s.companyRepo),
		CompanySearch:  query.NewCompanySearchQuery(s.companyRepo),
		ImageList:      query.NewImageListQuery(s.imageRepo),
		SettingsDetail: query.NewSettingsDetailQuery(s.settingsRepo, s.cfg.Masker),
		FollowUpQueue:  query.NewFollowUpQueueQuery(s.fairRepo, s.companyRepo),
		DashboardStats: query.NewDashboardStatsQuery(s.fairRepo, s.companyRepo, s.checklistRepo),
	}

	return nil
}

// Commands returns the command facade, or ErrNotInitialized before Init
// completed successfully.
func (s *Service) Commands() (Commands, error) {
	if !s.ready.Load() {
		return Commands{}, types.ErrNotInitialized
	}
	return s.commands, nil
}

// Queries returns the query facade, or ErrNotInitialized before Init
// completed successfully.
func (s *Service) Queries() (Queries, error) {
	if !s.ready.Load() {
		return Queries{}, types.ErrNotInitialized
	}
	return s.queries, nil
}

// DB exposes the underlying bun handle for hosts that need raw access,
// guarded by the same initialization check.
func (s *Service) DB() (*bun.DB, error) {
	if !s.ready.Load() {
		return nil, types.ErrNotInitialized
	}
	return s.db, nil
}

// FairRepository exposes the fair repository for advanced wiring.
func (s *Service) FairRepository() (types.FairRepository, error) {
	if !s.ready.Load() {
		return nil, types.ErrNotInitialized
	}
	return s.fairRepo, nil
}

// CompanyRepository exposes the company repository for advanced wiring.
func (s *Service) CompanyRepository() (types.CompanyRepository, error) {
	if !s.ready.Load() {
		return nil, types.ErrNotInitialized
	}
	return s.companyRepo, nil
}
