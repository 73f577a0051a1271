package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/handler/middleware"
	"github.com/andrewsvn/encoding-overseer/internal/instrument"
	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	logErrorWriteBody = "Error writing response body"
	logErrorReadBody  = "Error reading request body"
)

// AppHandlers wires the demo endpoints behind the compressing and logging
// middlewares.
type AppHandlers struct {
	cfg    negotiate.Config
	level  int
	instr  instrument.Instrumentation
	logger *zap.Logger
}

func NewAppHandlers(cfg negotiate.Config, level int,
	instr instrument.Instrumentation, logger *zap.Logger) *AppHandlers {

	return &AppHandlers{
		cfg:    cfg,
		level:  level,
		instr:  instr,
		logger: logger,
	}
}

func (ah *AppHandlers) GetRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.NewHTTPLogging(ah.logger).Middleware,
		middleware.NewCompressing(ah.logger, ah.cfg, ah.level, ah.instr).Middleware,
	)

	r.Get("/", ah.infoHandler())
	r.Get("/ping", ah.pingHandler())
	r.Post("/echo", ah.echoHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (ah *AppHandlers) infoHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rw.WriteHeader(http.StatusOK)

		_, err := fmt.Fprintf(rw,
			"encoding-overseer\n\nsupported codings: gzip, deflate\npreferred coding: %s\n",
			ah.cfg.Preferred)
		if err != nil {
			ah.logger.Error(logErrorWriteBody, zap.Error(err))
		}
	}
}

func (ah *AppHandlers) pingHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rw.WriteHeader(http.StatusOK)

		if _, err := rw.Write([]byte("pong")); err != nil {
			ah.logger.Error(logErrorWriteBody, zap.Error(err))
		}
	}
}

// echoHandler mirrors the request body back, so a single request can
// exercise both request decompression and response compression.
func (ah *AppHandlers) echoHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			ah.logger.Error(logErrorReadBody, zap.Error(err))
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ct := r.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		rw.Header().Set("Content-Type", ct)
		rw.WriteHeader(http.StatusOK)

		if _, err := rw.Write(data); err != nil {
			ah.logger.Error(logErrorWriteBody, zap.Error(err))
		}
	}
}
