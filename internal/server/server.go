package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/andrewsvn/encoding-overseer/internal/config/servercfg"
	"github.com/andrewsvn/encoding-overseer/internal/handler"
	"github.com/andrewsvn/encoding-overseer/internal/instrument"
	"github.com/andrewsvn/encoding-overseer/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func Run() error {
	cfg, err := servercfg.Read()
	if err != nil {
		return fmt.Errorf("can't read server config: %w", err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("can't initialize logger: %w", err)
	}
	sl := logger.Sugar()
	defer func() {
		_ = logger.Sync()
	}()

	instr := instrument.NewPrometheus(prometheus.DefaultRegisterer, "encoding_overseer")
	ahandlers := handler.NewAppHandlers(cfg.Negotiation(), cfg.CompressionLevel, instr, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	addr := strings.Trim(cfg.Addr, "\"")
	server := &http.Server{
		Addr:    addr,
		Handler: ahandlers.GetRouter(),
	}

	go func() {
		sl.Infow("starting encoding-overseer server",
			"address", addr,
			"preferredCoding", cfg.PreferredCoding,
			"compressionLevel", cfg.CompressionLevel,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down encoding-overseer server...")
	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.GracePeriodSec)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	logger.Info("encoding-overseer server shutdown complete")
	return nil
}
