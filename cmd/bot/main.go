package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucasreis/escala-bot/internal/config"
	"github.com/lucasreis/escala-bot/internal/health"
	"github.com/lucasreis/escala-bot/pkg/audit"
	"github.com/lucasreis/escala-bot/pkg/bot"
	"github.com/lucasreis/escala-bot/pkg/postgres"
	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport/console"
	"github.com/lucasreis/escala-bot/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	ctx    context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escala-bot",
		Short: "Escala Bot - shift scheduling over chat",
		Long:  `A bot that turns free-text roster messages into per-worker shift assignments, collects confirmations or refusals, and keeps an audit trail of the outcomes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment name used to prefix log files")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(confirmationsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger and configuration
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot",
		Long:  `Starts the keep-alive HTTP endpoint and processes inbound messages until interrupted. Uses the console transport, reading messages from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	ctx, stop := signal.NotifyContext(app.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closeSink, err := newAuditSink(ctx)
	if err != nil {
		return err
	}
	defer closeSink()

	healthSrv := health.NewServer(app.cfg.HTTPPort, app.logger)
	healthSrv.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		healthSrv.Shutdown(shutdownCtx)
	}()

	transport := console.New(os.Stdin, os.Stdout, app.logger)
	store := roster.NewPendingStore()
	confirmer := bot.NewConfirmer(store, transport, sink, app.logger)
	router := bot.NewRouter(store, confirmer, transport, transport, app.logger)

	app.logger.Info("Bot conectado",
		zap.String("audit_backend", app.cfg.AuditBackend),
		zap.String("session_dir", app.cfg.SessionDir),
	)

	router.Run(ctx, transport.Inbox(ctx))

	app.logger.Info("Bot encerrado")
	return nil
}

// newAuditSink builds the configured audit backend, creating its backing
// store if absent.
func newAuditSink(ctx context.Context) (audit.Sink, func(), error) {
	switch app.cfg.AuditBackend {
	case "postgres":
		db, err := postgres.NewDB(ctx, app.cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		app.logger.Info("Audit sink ready", zap.String("backend", "postgres"))
		return db, db.Close, nil
	default:
		app.logger.Info("Audit sink ready",
			zap.String("backend", "file"),
			zap.String("path", app.cfg.AuditLogPath),
		)
		return audit.NewFileSink(app.cfg.AuditLogPath), func() {}, nil
	}
}

func confirmationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirmations",
		Short: "List recorded confirmation outcomes",
		Long:  `Prints every audit record from the postgres backend, oldest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfg.AuditBackend != "postgres" {
				return fmt.Errorf("confirmations requires the postgres audit backend, got %q", app.cfg.AuditBackend)
			}

			db, err := postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := db.RunMigrations(app.ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			records, err := db.GetConfirmations(app.ctx)
			if err != nil {
				return fmt.Errorf("failed to load confirmation records: %w", err)
			}

			if len(records) == 0 {
				fmt.Println("No confirmations recorded yet.")
				return nil
			}

			for _, rec := range records {
				fmt.Printf("[%s] %s | %s | %s | %s | %s | %s\n",
					rec.Timestamp.UTC().Format(time.RFC3339),
					rec.Outcome,
					rec.WorkerNumber,
					rec.WorkerName,
					rec.Location,
					rec.DateLabel,
					rec.TimeLabel,
				)
			}

			return nil
		},
	}
}
