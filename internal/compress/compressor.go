package compress

import (
	"fmt"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/instrument"
	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
	"go.uber.org/zap"
)

// Compressor is the single place where a negotiated coding is mapped to a
// concrete compressing stream.
type Compressor struct {
	engines map[negotiate.Coding]WriteEngine
	cfg     negotiate.Config
	level   int
	instr   instrument.Instrumentation
	logger  *zap.Logger
}

func NewCompressor(l *zap.Logger, cfg negotiate.Config, level int,
	instr instrument.Instrumentation, engines ...WriteEngine) *Compressor {

	byCoding := make(map[negotiate.Coding]WriteEngine, len(engines))
	for _, e := range engines {
		byCoding[e.Coding()] = e
	}
	return &Compressor{
		engines: byCoding,
		cfg:     cfg,
		level:   level,
		instr:   instr,
		logger:  l,
	}
}

// CreateCompressWriter negotiates a response coding for the request and
// returns a wrapped ResponseWriter applying it, with Content-Encoding
// already set. It returns (nil, nil) when the request carries no
// Accept-Encoding header or when no mutually acceptable coding exists;
// the caller then writes the response as-is. A malformed quality value in
// the header is returned as a *negotiate.QualityError.
func (c *Compressor) CreateCompressWriter(w http.ResponseWriter, r *http.Request) (CompressedResponseWriter, error) {
	tokens := r.Header.Values("Accept-Encoding")
	if len(tokens) == 0 {
		return nil, nil
	}

	coding, err := negotiate.Negotiate(tokens, c.cfg)
	if err != nil {
		c.instr.NegotiationRejected()
		return nil, err
	}
	if coding == negotiate.CodingNone {
		c.instr.NegotiationNone()
		c.logger.Debug("No mutually acceptable coding, response left uncompressed")
		return nil, nil
	}

	engine, ok := c.engines[coding]
	if !ok {
		c.logger.Warn("No engine registered for negotiated coding",
			zap.String("coding", string(coding)))
		c.instr.NegotiationNone()
		return nil, nil
	}

	c.instr.NegotiationSelected(string(coding))
	c.logger.Debug("Compression engine chosen for response writing",
		zap.String("coding", string(coding)))

	engine.SetContentEncoding(w.Header())
	crw, err := engine.NewResponseWriter(w, c.level)
	if err != nil {
		c.logger.Error("Error creating compress writer", zap.Error(err))
		return nil, fmt.Errorf("error creating compress writer: %w", err)
	}
	return crw, nil
}
