// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/doeshing/codescout/internal/application/discovery"
	"github.com/doeshing/codescout/internal/application/doctor"
	"github.com/doeshing/codescout/internal/infrastructure/audit"
	"github.com/doeshing/codescout/internal/infrastructure/cache"
	"github.com/doeshing/codescout/internal/infrastructure/classify"
	"github.com/doeshing/codescout/internal/infrastructure/config"
	"github.com/doeshing/codescout/internal/infrastructure/gateway"
	"github.com/doeshing/codescout/internal/infrastructure/security"
	"github.com/doeshing/codescout/internal/pkg/logger"
	"github.com/doeshing/codescout/internal/ports"
)

// Container holds the dependency graph. The cache and audit store are
// constructed here with explicit lifecycles; Close is the teardown hook.
type Container struct {
	DiscoveryService *discovery.Service
	DoctorService    *doctor.Service
	ConfigLoader     *config.FileLoader
	Cache            *cache.Store
	Audit            *audit.SQLiteStore
	Logger           ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose, nil)
	cacheStore := cache.NewStore(cfg.Cache)
	runner := gateway.New(cfg.Executables)
	classifier := classify.NewExitCodeClassifier()

	var redactor ports.Redactor = security.NoopRedactor{}
	if cfg.Redaction.Enabled {
		r, err := security.NewRedactor(cfg.Redaction.RulesFile)
		if err != nil {
			r, err = security.NewRedactor("")
			if err != nil {
				return nil, err
			}
		}
		redactor = r
	}

	var auditStore *audit.SQLiteStore
	if cfg.Audit.Enabled {
		auditStore, err = audit.NewSQLiteStore(cfg.Audit.DBPath)
		if err != nil {
			log.Warn("audit store unavailable", map[string]interface{}{"error": err.Error()})
			auditStore = nil
		}
	}

	discoveryService := &discovery.Service{
		ConfigProvider: cfgLoader,
		Runner:         runner,
		Classifier:     classifier,
		Cache:          cacheStore,
		Redactor:       redactor,
		Logger:         log,
	}
	if auditStore != nil {
		discoveryService.Audit = auditStore
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Runner:         runner,
		Cache:          cacheStore,
		Redactor:       redactor,
	}
	if auditStore != nil {
		doctorService.AuditPing = auditStore
	}

	return &Container{
		DiscoveryService: discoveryService,
		DoctorService:    doctorService,
		ConfigLoader:     cfgLoader,
		Cache:            cacheStore,
		Audit:            auditStore,
		Logger:           log,
	}, nil
}

// Close flushes the cache and releases the audit database.
func (c *Container) Close() error {
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.Audit != nil {
		return c.Audit.Close()
	}
	return nil
}
