package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	pickuphttp "pickup/internal/adapters/in/http"
	"pickup/internal/adapters/out/memory"
	"pickup/internal/adapters/out/postgres"
	"pickup/internal/adapters/out/postgres/journalrepo"
	"pickup/internal/adapters/out/shopify"
	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/jobs"
)

// CompositionRoot owns the long-lived adapters. The ledger is shared by every
// handler so that the per-order lock covers both confirmation and
// reconciliation.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	gormDB   *gorm.DB
	ledger   *memory.PickupLedger
	journal  ports.PickupJournal
	gateway  *shopify.Client
	resolver *services.LocationResolver
	planner  services.FulfillmentPlanner
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	gateway, err := shopify.NewClient(shopify.Config{
		ShopName:    cfg.ShopName,
		AccessToken: cfg.ShopifyAdminToken,
		APIVersion:  cfg.ShopifyAPIVersion,
		RateLimit:   cfg.ShopifyRateLimit,
		RateBurst:   cfg.ShopifyRateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("shopify client: %w", err)
	}

	resolver, err := NewLocationResolver(cfg)
	if err != nil {
		return nil, fmt.Errorf("location rules: %w", err)
	}

	root := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		ledger:   memory.NewPickupLedger(),
		gateway:  gateway,
		resolver: resolver,
		planner:  services.NewFulfillmentPlanner(cfg.FulfillmentMessage),
	}

	if !cfg.UsesDatabase() {
		logger.Warn("DB_HOST is not set, the pickup journal is kept in memory")
		root.journal = memory.NewPickupJournal()
		return root, nil
	}

	dsn, err := postgres.MakeDSN(postgres.DSNConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSslMode,
	})
	if err != nil {
		return nil, fmt.Errorf("database dsn: %w", err)
	}
	root.gormDB, err = postgres.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	root.journal = journalrepo.NewGormJournalRepository(root.gormDB)
	return root, nil
}

// NewLocationResolver builds the keyword rules and the fallback location from
// configuration. A location without an id contributes no rule. Without
// LOCATION_DEFAULT the store is the fallback; the upstream location list is
// consulted only when no fallback is configured at all.
func NewLocationResolver(cfg Config) (*services.LocationResolver, error) {
	var (
		rules    []services.LocationRule
		byName   = make(map[string]kernel.LocationID)
		joinErrs error
	)

	add := func(name, rawID string, keywords []string) {
		if rawID == "" {
			return
		}
		id, err := kernel.ParseLocationID(rawID)
		if err != nil {
			joinErrs = errors.Join(joinErrs, fmt.Errorf("%s location id: %w", name, err))
			return
		}
		rule, err := services.NewLocationRule(id, keywords)
		if err != nil {
			joinErrs = errors.Join(joinErrs, fmt.Errorf("%s location: %w", name, err))
			return
		}
		rules = append(rules, rule)
		byName[name] = id
	}
	add(LocationDefaultStore, cfg.LocationStoreID, cfg.LocationStoreKeywords)
	add(LocationDefaultWarehouse, cfg.LocationWarehouseID, cfg.LocationWarehouseKeywords)

	var fallback *kernel.LocationID
	switch {
	case cfg.LocationDefault == "":
		if id, ok := byName[LocationDefaultStore]; ok {
			fallback = &id
		}
	default:
		id, ok := byName[cfg.LocationDefault]
		if !ok {
			joinErrs = errors.Join(joinErrs,
				fmt.Errorf("LOCATION_DEFAULT is %q but no %s location id is configured", cfg.LocationDefault, cfg.LocationDefault))
		} else {
			fallback = &id
		}
	}

	if joinErrs != nil {
		return nil, joinErrs
	}
	return services.NewLocationResolver(rules, fallback)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() *commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(
		c.ledger, c.gateway, c.journal, c.resolver, c.planner, c.cfg.UpstreamTimeout, c.logger,
	)
}

func (c *CompositionRoot) CreateReconcilePickupsCommandHandler() *commands.ReconcilePickupsCommandHandler {
	return commands.NewReconcilePickupsCommandHandler(c.ledger, c.gateway, c.journal, c.cfg.UpstreamTimeout, c.logger)
}

func (c *CompositionRoot) CreateGetPickupPreviewQueryHandler() *queries.GetPickupPreviewQueryHandler {
	return queries.NewGetPickupPreviewQueryHandler(c.ledger, c.gateway, c.cfg.UpstreamTimeout, c.logger)
}

func (c *CompositionRoot) CreateGetPickupJournalQueryHandler() queries.GetPickupJournalQueryHandler {
	return queries.NewGetPickupJournalQueryHandler(c.journal)
}

func (c *CompositionRoot) CreateHTTPServer() (*pickuphttp.Server, error) {
	localizer, err := pickuphttp.NewLocalizer(c.cfg.PickupLanguage)
	if err != nil {
		return nil, fmt.Errorf("PICKUP_LANGUAGE: %w", err)
	}
	return pickuphttp.NewServer(
		c.CreateConfirmPickupCommandHandler(),
		c.CreateGetPickupPreviewQueryHandler(),
		c.CreateGetPickupJournalQueryHandler(),
		localizer,
	), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcilePickupsCommandHandler(), c.cfg.ReconcileSchedule, c.logger)
}

// Close releases the database connection pool, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
