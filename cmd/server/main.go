package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/roomsplit/internal/auth"
	"github.com/mmynk/roomsplit/internal/calculator"
	"github.com/mmynk/roomsplit/internal/config"
	"github.com/mmynk/roomsplit/internal/events"
	"github.com/mmynk/roomsplit/internal/metrics"
	"github.com/mmynk/roomsplit/internal/middleware"
	"github.com/mmynk/roomsplit/internal/service"
	"github.com/mmynk/roomsplit/internal/storage"
	"github.com/mmynk/roomsplit/internal/storage/postgres"
	"github.com/mmynk/roomsplit/internal/storage/sqlite"
	"github.com/mmynk/roomsplit/pkg/api/apiconnect"
	"github.com/mmynk/roomsplit/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	logging.Setup()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	publisher, err := openPublisher(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize events: %w", err)
	}
	defer publisher.Close()

	m := metrics.New()

	mux := http.NewServeMux()

	common := []connect.Interceptor{
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(),
	}
	guarded := common
	if cfg.AuthEnabled() {
		authenticator, err := auth.NewPassphraseAuthenticator(cfg.HouseholdName, cfg.HouseholdPassphraseHash)
		if err != nil {
			return err
		}
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

		authSvc := service.NewAuthService(authenticator, jwtManager, slog.Default())
		mux.Handle(apiconnect.NewAuthServiceHandler(authSvc, connect.WithInterceptors(common...)))

		guarded = append(append([]connect.Interceptor{}, common...), middleware.RequireAuth(jwtManager))
		slog.Info("Household auth enabled", "household", cfg.HouseholdName)
	} else {
		slog.Warn("HOUSEHOLD_PASSPHRASE_HASH not set, all services are open")
	}
	opts := connect.WithInterceptors(guarded...)

	mux.Handle(apiconnect.NewParticipantServiceHandler(service.NewParticipantService(store, publisher), opts))
	mux.Handle(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(store, publisher, cfg.DefaultCurrency), opts))
	mux.Handle(apiconnect.NewSettlementServiceHandler(
		service.NewSettlementService(store, m, cfg.DefaultCurrency, calculator.Options{RemovedPolicy: cfg.RemovedPolicy}),
		opts,
	))
	mux.Handle("/metrics", m.Handler())

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting",
			"address", server.Addr,
			"backend", cfg.DataBackend,
			"currency", cfg.DefaultCurrency,
			"removed_policy", cfg.RemovedPolicy,
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		store, err := postgres.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", "postgres")
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", "sqlite", "database", cfg.DBPath)
		return store, nil
	}
}

func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if !cfg.EventsEnabled() {
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, err
	}
	slog.Info("Publishing ledger events", "exchange", cfg.AMQPExchange)
	return publisher, nil
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
