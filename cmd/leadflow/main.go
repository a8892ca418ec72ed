package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leadflow/lead-system/internal/infrastructure/config"
	"github.com/leadflow/lead-system/pkg/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "leadflow",
	Short: "LeadFlow lead management API",
	Long: `LeadFlow serves a paginated, filterable lead collection with
create/update/delete operations behind a single-user session.

Configuration is read from the environment (PORT, STORE_BACKEND,
SESSION_BACKEND, MONGO_URI, REDIS_ADDR, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		cfg = loaded
		log = logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: "leadflow",
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
