package main

import (
	"os"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "grampanchayat",
		Short:         "Grampanchayat website backend",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCreateAdminCmd(),
		newSetupBucketCmd(),
		newEmailPreviewCmd(),
	)
	return root
}

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Logger{}, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return cfg, loggerService, log, nil
}
