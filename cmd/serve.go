package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dreamjobs/portal/auth"
	"github.com/dreamjobs/portal/config"
	"github.com/dreamjobs/portal/handlers"
	"github.com/dreamjobs/portal/notify"
	"github.com/dreamjobs/portal/payments"
	"github.com/dreamjobs/portal/storage"
	"github.com/dreamjobs/portal/tools"
	"github.com/dreamjobs/portal/utils"
)

// demoPassword is the password of the accounts created by --seed and SEED_DEMO_USERS.
const demoPassword = "123456"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "Run the HTTP API; blocks until SIGINT/SIGTERM and then drains in-flight requests.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := cmd.Context()

	store, err := openStore(ctx, cfg, cfg.SeedDemo, log)
	if err != nil {
		return err
	}
	defer store.Close()

	resumes, err := storage.NewResumeStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing resume storage: %w", err)
	}
	if closer, ok := resumes.(io.Closer); ok {
		defer closer.Close()
	}
	log.Info("resume storage ready", zap.String("backend", cfg.ResumeBackend))

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	gateway, err := payments.New(cfg, utils.NewHTTPClient(timeout))
	if err != nil {
		return fmt.Errorf("initializing payments: %w", err)
	}
	if !cfg.PaymentsConfigured() {
		log.Warn("payment credentials missing, checkout is disabled", zap.String("provider", gateway.Name()))
	}

	notifier, err := newNotifier(cfg, log)
	if err != nil {
		return err
	}
	defer notifier.Close()

	router := handlers.NewRouter(handlers.Deps{
		Config:   cfg,
		Store:    store,
		Resumes:  resumes,
		Gateway:  gateway,
		Notifier: notifier,
		Mailer:   newMailer(cfg, log),
		JWT:      auth.NewJWTService(cfg),
		Google:   auth.NewGoogleAuthService(cfg),
		Tools:    tools.NewDefaultRegistry(),
		Logger:   log,
		Version:  version,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited gracefully")
	return nil
}

// openStore connects to the configured database and brings its schema up
// to date.
func openStore(ctx context.Context, cfg *config.Config, seed bool, log *zap.Logger) (*storage.SQLStore, error) {
	store, err := storage.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.DBDriver))

	if seed {
		hash, err := auth.HashPassword(demoPassword)
		if err != nil {
			store.Close()
			return nil, err
		}
		if err := store.SeedDemoUsers(ctx, hash); err != nil {
			store.Close()
			return nil, fmt.Errorf("seeding demo users: %w", err)
		}
		log.Info("demo users seeded")
	}
	return store, nil
}

func newNotifier(cfg *config.Config, log *zap.Logger) (notify.Notifier, error) {
	if cfg.AMQPURL == "" {
		return notify.NewLogNotifier(log), nil
	}
	n, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("initializing event publisher: %w", err)
	}
	log.Info("publishing events to RabbitMQ", zap.String("exchange", cfg.AMQPExchange))
	return n, nil
}

// newMailer returns nil when no mail provider is configured.
func newMailer(cfg *config.Config, log *zap.Logger) notify.Mailer {
	if !cfg.MailConfigured() {
		log.Warn("mail provider not configured, candidate contact falls back to returning addresses")
		return nil
	}
	log.Info("sending mail through SendGrid", zap.String("from", cfg.MailFrom))
	return notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridBaseURL, cfg.MailFrom, cfg.MailFromName)
}
