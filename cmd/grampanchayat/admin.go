package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/deppfellow/grampanchayat/internal/database"
	"github.com/deppfellow/grampanchayat/internal/lib/storage"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/service"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()
			return database.Migrate(ctx, &log, cfg)
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin",
		Short: "Create the configured admin user, or grant it every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			db, err := database.New(cfg, &log, loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			s := &server.Server{Config: cfg, Logger: &log, LoggerService: loggerService, DB: db}
			users := service.NewUserService(repository.NewUserRepository(s), nil, cfg.Admin, &log)

			created, err := users.EnsureAdmin(cmd.Context())
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", cfg.Admin.Email)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s already exists\n", cfg.Admin.Email)
			}
			return nil
		},
	}
}

func newSetupBucketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-bucket",
		Short: "Create the public storage bucket for uploads",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			store := storage.NewSupabaseStore(&cfg.Storage, &log)
			created, err := store.EnsureBucket(cmd.Context(), storage.BucketOptions{
				Public:           true,
				FileSizeLimit:    max(cfg.Upload.MaxImageSize, cfg.Upload.MaxDocumentSize),
				AllowedMimeTypes: slices.Concat(service.ImageMIMETypes, service.DocumentMIMETypes),
			})
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "bucket %s created\n", store.Bucket())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "bucket %s already exists\n", store.Bucket())
			}
			return nil
		},
	}
}
