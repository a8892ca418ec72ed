package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/leadflow/lead-system/internal/api/handler"
	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
	"github.com/leadflow/lead-system/internal/infrastructure/config"
	"github.com/leadflow/lead-system/internal/infrastructure/db/memory"
	mongostore "github.com/leadflow/lead-system/internal/infrastructure/db/mongo"
	redisstore "github.com/leadflow/lead-system/internal/infrastructure/db/redis"
	"github.com/leadflow/lead-system/internal/infrastructure/db/seed"
)

// backends holds the storage selected by configuration.
type backends struct {
	leads     ports.LeadStore
	sessions  ports.SessionStorage
	readiness map[string]handler.Pinger
	closers   []func(context.Context) error
}

func (b *backends) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i](ctx))
	}
	return errors.Join(errs...)
}

func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{readiness: map[string]handler.Pinger{}}

	if err := openLeadStore(ctx, cfg, log, b); err != nil {
		_ = b.Close(ctx)
		return nil, err
	}
	if err := openSessionStorage(ctx, cfg, log, b); err != nil {
		_ = b.Close(ctx)
		return nil, err
	}
	return b, nil
}

func openLeadStore(ctx context.Context, cfg *config.Config, log zerolog.Logger, b *backends) error {
	switch cfg.Leads.Backend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, client.Disconnect)
		b.readiness["mongodb"] = mongostore.Pinger{DB: db}

		repo := mongostore.NewLeadRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}
		if cfg.Leads.SeedDemo {
			n, err := repo.Seed(ctx, seed.DemoLeads(time.Now().UTC()))
			if err != nil {
				return err
			}
			log.Info().Int("inserted", n).Msg("demo leads seeded")
		}
		b.leads = repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo lead store")

	default:
		var initial []domain.Lead
		if cfg.Leads.SeedDemo {
			initial = seed.DemoLeads(time.Now().UTC())
		}
		b.leads = memory.NewLeadStore(initial...)
		log.Info().Int("seeded", len(initial)).Msg("using in-memory lead store")
	}
	return nil
}

func openSessionStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger, b *backends) error {
	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })

		storage := redisstore.NewSessionStorage(client)
		b.sessions = storage
		b.readiness["redis"] = storage
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session storage")

	default:
		b.sessions = memory.NewSessionStorage()
		log.Warn().Msg("using in-memory session storage, sessions will not survive a restart (set SESSION_BACKEND=redis)")
	}
	return nil
}
