package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/actions"
	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/api/rest"
	"github.com/musicvalue/vault-backend/internal/api/server"
	"github.com/musicvalue/vault-backend/internal/auth"
	"github.com/musicvalue/vault-backend/internal/config"
	"github.com/musicvalue/vault-backend/internal/hydrator"
	"github.com/musicvalue/vault-backend/internal/logger"
	"github.com/musicvalue/vault-backend/internal/messaging"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
	solanaclient "github.com/musicvalue/vault-backend/internal/providers/solana"
	"github.com/musicvalue/vault-backend/internal/rpcproxy"
	"github.com/musicvalue/vault-backend/internal/store"
)

const refreshInterval = time.Minute

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "vault-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting MusicValue Vault API")

	// Connect to database
	dataStore, err := store.NewPGStore(cfg.Database.DSN())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := dataStore.AutoMigrate(); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	cache := adapter.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	rpc := adapter.NewSolanaRPC(cfg.Solana.RPCURL)

	// Connect to NATS JetStream
	natsConn, js, err := adapter.NewNatsJetStream().Connect(cfg.NATS.URL,
		nats.Name(cfg.NATS.ConnectionName),
		nats.MaxReconnects(cfg.NATS.MaxReconnects),
		nats.ReconnectWait(cfg.NATS.ReconnectWait),
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer natsConn.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", natsConn.ConnectedUrl()))

	publisher, err := messaging.NewEventPublisher(ctx, js, jsonAdapter, clock, cfg.NATS.StreamName)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err))
	}

	// Program and provider clients
	program, err := solanaclient.NewClient(rpc, cfg.Solana.ProgramID, cfg.Solana.USDCMint)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create program client", zap.Error(err))
	}
	tracks := audius.NewCachedClient(
		audius.NewClient(httpClient, cfg.Audius.APIURL, cfg.Audius.APIKey),
		cache, jsonAdapter, cfg.Redis.TrackTTL,
	)

	// Session issuing
	sessions, err := auth.NewSessionIssuer(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create session issuer", zap.Error(err))
	}

	// RPC passthrough
	proxy, err := rpcproxy.New(cfg.Solana.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create RPC proxy", zap.Error(err))
	}

	// Hydration worker pool and snapshot refresh loop
	hyd := hydrator.New(program, tracks, dataStore, clock, cfg.Worker.PoolSize)
	defer hyd.Stop()
	go refreshLoop(ctx, hyd)

	actionsSvc := actions.NewService(program, tracks, cfg.Actions.BaseURL)

	handler := rest.NewHandler(
		program, tracks, hyd, dataStore, actionsSvc,
		publisher, sessions, cache, jsonAdapter, clock,
		cfg.Redis.VaultTTL,
	)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, handler, sessions, proxy)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Fresh context for shutdown; the main one is already canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// refreshLoop keeps vault snapshots warm for the listing endpoint.
func refreshLoop(ctx context.Context, hyd *hydrator.Hydrator) {
	if err := hyd.Refresh(ctx); err != nil {
		logger.WarnCtx(ctx, "initial snapshot refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := hyd.Refresh(ctx); err != nil {
				logger.WarnCtx(ctx, "snapshot refresh failed", zap.Error(err))
			}
		}
	}
}
