// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/tempushq/timetrack-service/internal/config"
	"github.com/tempushq/timetrack-service/internal/crypto"
	"github.com/tempushq/timetrack-service/internal/db"
	"github.com/tempushq/timetrack-service/internal/identity"
	"github.com/tempushq/timetrack-service/internal/logging"
	"github.com/tempushq/timetrack-service/internal/monitoring/prometheus"
	"github.com/tempushq/timetrack-service/internal/storage"
	"github.com/tempushq/timetrack-service/internal/tenancy"
	"github.com/tempushq/timetrack-service/internal/tracing"
	"github.com/tempushq/timetrack-service/pkg/organization"
	"github.com/tempushq/timetrack-service/pkg/project"
	"github.com/tempushq/timetrack-service/pkg/replication"
	"github.com/tempushq/timetrack-service/pkg/timeentry"
	"github.com/tempushq/timetrack-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("timetrack-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	codec, err := crypto.NewCodec(specs.EncryptionSecret, specs.IsProduction(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize field encryption: %w", err)
	}

	dbConfig := db.Config{
		Backend:         specs.StorageBackend,
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
		SQLitePath:      specs.SQLitePath,
	}
	dbClient, err := db.NewClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	logger.Infof("Using %s storage backend", dbClient.Backend())

	s := storage.NewStorage(dbClient, codec, tracer, monitor, logger)
	guard := tenancy.NewGuard(dbClient, tracer, monitor, logger)

	organizationService := organization.NewService(s, tracer, monitor, logger)
	projectService := project.NewService(s, guard, tracer, monitor, logger)
	timeEntryService := timeentry.NewService(s, guard, dbClient, tracer, monitor, logger)
	syncReader := replication.NewReader(s, tracer, monitor, logger)

	identityMiddleware := identity.NewMiddleware(tracer, monitor, logger)

	router := web.NewRouter(
		organizationService,
		projectService,
		timeEntryService,
		syncReader,
		identityMiddleware,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
