package compress

import (
	"compress/zlib"
	"fmt"
	"io"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
)

const deflateEncoding = "deflate"

// DeflateWriteEngine produces zlib-wrapped deflate bodies, which is what
// the HTTP "deflate" coding means per RFC 9110.
type DeflateWriteEngine struct{}

func NewDeflateWriteEngine() *DeflateWriteEngine {
	return &DeflateWriteEngine{}
}

func (dwe *DeflateWriteEngine) Coding() negotiate.Coding {
	return negotiate.CodingDeflate
}

func (dwe *DeflateWriteEngine) NewResponseWriter(w http.ResponseWriter, level int) (CompressedResponseWriter, error) {
	zw, err := zlib.NewWriterLevel(w, normalizeZlibLevel(level))
	if err != nil {
		return nil, fmt.Errorf("error initializing deflate writer: %w", err)
	}
	return &deflateResponseWriter{w, zw}, nil
}

func (dwe *DeflateWriteEngine) SetContentEncoding(header http.Header) {
	header.Set("Content-Encoding", deflateEncoding)
}

type DeflateReadEngine struct{}

func NewDeflateReadEngine() *DeflateReadEngine {
	return &DeflateReadEngine{}
}

func (dre *DeflateReadEngine) Name() string {
	return deflateEncoding
}

func (dre *DeflateReadEngine) Applicable(header http.Header) bool {
	return checkContentEncoding(header, deflateEncoding)
}

func (dre *DeflateReadEngine) ReadAll(r io.Reader) ([]byte, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error initializing deflate reader: %w", err)
	}

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("error reading deflated data: %w", err)
	}
	return data, nil
}

func normalizeZlibLevel(level int) int {
	if level <= 0 {
		return zlib.DefaultCompression
	}
	if level > zlib.BestCompression {
		return zlib.BestCompression
	}
	return level
}

type deflateResponseWriter struct {
	http.ResponseWriter
	zw *zlib.Writer
}

func (drw *deflateResponseWriter) Write(data []byte) (int, error) {
	return drw.zw.Write(data)
}

func (drw *deflateResponseWriter) WriteHeader(statusCode int) {
	drw.ResponseWriter.Header().Set("Content-Encoding", deflateEncoding)
	drw.ResponseWriter.WriteHeader(statusCode)
}

func (drw *deflateResponseWriter) Close() error {
	return drw.zw.Close()
}
