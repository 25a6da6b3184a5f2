// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/tempushq/timetrack-service/internal/config"
	"github.com/tempushq/timetrack-service/internal/crypto"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/internal/types"
)

// seedCmd bootstraps an organization with an admin user so a fresh
// deployment has an account to log in with.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create an organization and its first admin user",
	Long:  `Create an organization and its first admin user in the configured storage backend`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := seed(cmd); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.Flags().String("name", "", "Organization name")
	seedCmd.Flags().String("slug", "", "Organization slug, globally unique")
	seedCmd.Flags().String("email", "", "Admin user email")
	seedCmd.Flags().String("password", "", "Admin user password")
	_ = seedCmd.MarkFlagRequired("name")
	_ = seedCmd.MarkFlagRequired("slug")
	_ = seedCmd.MarkFlagRequired("email")
	_ = seedCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("name")
	slug, _ := cmd.Flags().GetString("slug")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := monitoring.NewNoopMonitor()
	tracer := tracing.NewNoopTracer()

	codec, err := crypto.NewCodec(specs.EncryptionSecret, specs.IsProduction(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize field encryption: %w", err)
	}

	dbClient, err := db.NewClient(
		db.Config{
			Backend:         specs.StorageBackend,
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			SQLitePath:      specs.SQLitePath,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, codec, tracer, monitor, logger)
	ctx := cmd.Context()

	org, err := s.CreateOrganization(ctx, name, slug, "free")
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := s.CreateUser(ctx, &types.User{
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           types.RoleAdmin,
		Active:         true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	// A starter project and task so time can be logged right away.
	proj, err := s.CreateProject(ctx, &types.Project{
		OrganizationID: org.ID,
		Name:           "General",
		Active:         true,
	})
	if err != nil {
		return fmt.Errorf("failed to create starter project: %w", err)
	}

	if _, err := s.CreateTask(ctx, &types.Task{
		OrganizationID: org.ID,
		ProjectID:      proj.ID,
		Name:           "Unassigned",
		Active:         true,
	}); err != nil {
		return fmt.Errorf("failed to create starter task: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created organization %s (%s) with admin %s\n", org.Slug, org.ID, admin.Email)
	return nil
}
