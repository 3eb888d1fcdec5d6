package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/config"
	"github.com/mmynk/consorcio/internal/idgen"
	"github.com/mmynk/consorcio/internal/metrics"
	"github.com/mmynk/consorcio/internal/receipts"
	"github.com/mmynk/consorcio/internal/router"
	"github.com/mmynk/consorcio/internal/service"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/internal/storage/jsonfile"
	"github.com/mmynk/consorcio/internal/storage/sqlite"
	"github.com/mmynk/consorcio/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Path)
	default:
		return jsonfile.New(cfg.Path)
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default ./config.yaml if present)")
	flag.Parse()

	// LOG_LEVEL wins over log.level from config
	logging.Setup("")

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Log.Level)

	// amounts are JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true

	store, err := openStore(cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	receiptStore, err := receipts.New(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		slog.Error("Failed to initialize uploads", "error", err)
		os.Exit(1)
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = randomSecret()
		slog.Warn("auth.jwt_secret is not set, using a random secret; tokens will not survive a restart")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.Auth.TokenTTL)

	m := metrics.New()
	ledgerSvc := service.NewLedgerService(store, idgen.UUIDv7{}, m, logger)

	handler := router.SetupRouter(router.Options{
		Mode:        cfg.Server.Mode,
		Ledger:      ledgerSvc,
		Auth:        service.NewAuthService(ledgerSvc, nil, jwtManager, logger),
		Receipts:    service.NewReceiptService(receiptStore, m, logger),
		JWT:         jwtManager,
		Metrics:     m,
		Logger:      logger,
		RequireAuth: cfg.Auth.Required,
	})

	server := &http.Server{
		Addr: cfg.Addr(),
		// h2c serves HTTP/2 without TLS alongside HTTP/1.1
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "address", server.Addr, "auth_required", cfg.Auth.Required)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
