package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Natali-Skv/forum_board/config"
	"github.com/Natali-Skv/forum_board/configRouting"
	"github.com/Natali-Skv/forum_board/internal/app"
	"github.com/Natali-Skv/forum_board/internal/tools/logger"
	"github.com/fatih/color"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath    string
	migrationsDir string
)

var rootCmd = &cobra.Command{
	Use:           "forum",
	Short:         "Forum board API server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		return serve(cmd.Context(), cfg, log)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or roll back the postgres schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}
		return runMigrations(cfg, direction, log)
	},
}

var threadCmd = &cobra.Command{
	Use:   "thread <id>",
	Short: "Print the reply tree of a thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		repos, closeRepos, err := app.OpenRepos(cfg, log)
		if err != nil {
			return err
		}
		defer closeRepos()
		return printThread(cmd.OutOrStdout(), repos, args[0], cfg.OrphanPolicy())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "db/migrations", "directory holding the migration files")
	threadCmd.Flags().BoolVar(&color.NoColor, "no-color", color.NoColor, "disable colored output")
	rootCmd.AddCommand(serveCmd, migrateCmd, threadCmd)
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build logger")
	}
	return cfg, log, nil
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	repos, closeRepos, err := app.OpenRepos(cfg, log)
	if err != nil {
		return err
	}
	defer closeRepos()

	e := app.NewServer(cfg, repos, log)
	configRouting.ConfigureMetrics(e)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.String("storage", cfg.Storage.Backend))
		if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

func runMigrations(cfg *config.Config, direction string, log *zap.Logger) error {
	m, err := migrate.New("file://"+migrationsDir, cfg.Storage.Postgres.MigrateURL())
	if err != nil {
		return errors.Wrap(err, "create migration instance")
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return errors.Errorf("unknown migration direction %q", direction)
	}
	if err == migrate.ErrNoChange {
		log.Info("migration state is up to date")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "migrate %s", direction)
	}
	version, dirty, _ := m.Version()
	log.Info("ran migrations", zap.String("direction", direction), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
