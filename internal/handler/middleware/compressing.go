package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/compress"
	"github.com/andrewsvn/encoding-overseer/internal/handler/errorhandling"
	"github.com/andrewsvn/encoding-overseer/internal/instrument"
	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
	"go.uber.org/zap"
)

type Compressing struct {
	compr   *compress.Compressor
	decompr *compress.Decompressor
	logger  *zap.SugaredLogger
}

func NewCompressing(l *zap.Logger, cfg negotiate.Config, level int,
	instr instrument.Instrumentation) *Compressing {

	cmLogger := l.Sugar().With(zap.String("component", "compress-middleware"))
	return &Compressing{
		compr: compress.NewCompressor(l, cfg, level, instr,
			compress.NewGzipWriteEngine(), compress.NewDeflateWriteEngine()),
		decompr: compress.NewDecompressor(l,
			compress.NewGzipReadEngine(), compress.NewDeflateReadEngine()),
		logger: cmLogger,
	}
}

func (c *Compressing) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := c.decompr.ReadRequestBody(r)
		if err != nil {
			errorhandling.NewValidationError(fmt.Sprintf("error decompressing body: %v", err)).Render(w)
			return
		}
		r.Body = io.NopCloser(bytes.NewBuffer(body))

		crw, err := c.compr.CreateCompressWriter(w, r)
		if err != nil {
			var qerr *negotiate.QualityError
			if errors.As(err, &qerr) {
				c.logger.Infow("rejecting request with malformed quality value", "token", qerr.Token)
				errorhandling.NewValidationError(fmt.Sprintf("malformed Accept-Encoding header: %v", err)).Render(w)
				return
			}
			c.logger.Errorw("error creating compress writer", "error", err)
			errorhandling.NewInternalServerError(err).Render(w)
			return
		}

		if crw != nil {
			defer func() {
				if err := crw.Close(); err != nil {
					c.logger.Errorw("error closing compress writer", "error", err)
				}
			}()
			next.ServeHTTP(crw, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}
