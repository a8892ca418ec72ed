package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mongostore "github.com/leadflow/lead-system/internal/infrastructure/db/mongo"
	"github.com/leadflow/lead-system/internal/infrastructure/db/seed"
)

// seedCmd loads the demo dataset into Mongo
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo leads into MongoDB",
	Long: `Creates the lead indexes and inserts the demo dataset (five named leads
and fifty generated ones) into MONGO_DB. Collections that already hold
leads are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	repo := mongostore.NewLeadRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}

	n, err := repo.Seed(ctx, seed.DemoLeads(time.Now().UTC()))
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info().Str("database", cfg.Mongo.Database).Msg("leads collection not empty, nothing seeded")
		return nil
	}
	log.Info().Int("inserted", n).Str("database", cfg.Mongo.Database).Msg("demo leads seeded")
	return nil
}
