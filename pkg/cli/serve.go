package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arkhamd/arkhamd/pkg/config"
	"github.com/arkhamd/arkhamd/pkg/logging"
	"github.com/arkhamd/arkhamd/pkg/server"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

var (
	serveConfigPath string
	serveSeedPath   string
	serveHost       string
	servePort       int
	serveLogLevel   string
	serveLogFormat  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the records server",
	Long: `Start the records server with collections seeded from a roster file.
Flags override values from the config file. Without --seed the built-in
example roster is loaded.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to config file (YAML or JSON)")
	serveCmd.Flags().StringVar(&serveSeedPath, "seed", "", "Path to seed roster file (YAML or JSON)")
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "Listen address")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Listen port")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags beat the config file, but only when the user actually set them.
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = serveLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = serveLogFormat
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = serveSeedPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	roster := config.DefaultRoster()
	if cfg.SeedFile != "" {
		loaded, err := config.LoadRoster(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("load seed roster: %w", err)
		}
		roster = loaded
		logger.Info("loaded seed roster",
			"file", cfg.SeedFile,
			"inmates", len(roster.Inmates),
			"staff", len(roster.Staff),
			"treatments", len(roster.Treatments),
			"incidents", len(roster.Incidents))
	}

	srv, err := server.New(cfg, logger, roster)
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
