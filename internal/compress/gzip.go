package compress

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
)

const gzipEncoding = "gzip"

type GzipWriteEngine struct{}

func NewGzipWriteEngine() *GzipWriteEngine {
	return &GzipWriteEngine{}
}

func (gwe *GzipWriteEngine) Coding() negotiate.Coding {
	return negotiate.CodingGzip
}

func (gwe *GzipWriteEngine) NewResponseWriter(w http.ResponseWriter, level int) (CompressedResponseWriter, error) {
	gw, err := gzip.NewWriterLevel(w, normalizeGzipLevel(level))
	if err != nil {
		return nil, fmt.Errorf("error initializing gzip writer: %w", err)
	}
	return &gzipResponseWriter{w, gw}, nil
}

func (gwe *GzipWriteEngine) SetContentEncoding(header http.Header) {
	header.Set("Content-Encoding", gzipEncoding)
}

type GzipReadEngine struct{}

func NewGzipReadEngine() *GzipReadEngine {
	return &GzipReadEngine{}
}

func (gre *GzipReadEngine) Name() string {
	return gzipEncoding
}

func (gre *GzipReadEngine) Applicable(header http.Header) bool {
	return checkContentEncoding(header, gzipEncoding, "x-gzip")
}

func (gre *GzipReadEngine) ReadAll(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error initializing gzip reader: %w", err)
	}

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("error reading gzipped data: %w", err)
	}
	return data, nil
}

func normalizeGzipLevel(level int) int {
	if level <= 0 {
		return gzip.DefaultCompression
	}
	if level > gzip.BestCompression {
		return gzip.BestCompression
	}
	return level
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gw *gzip.Writer
}

func (grw *gzipResponseWriter) Write(data []byte) (int, error) {
	return grw.gw.Write(data)
}

func (grw *gzipResponseWriter) WriteHeader(statusCode int) {
	grw.ResponseWriter.Header().Set("Content-Encoding", gzipEncoding)
	grw.ResponseWriter.WriteHeader(statusCode)
}

func (grw *gzipResponseWriter) Close() error {
	return grw.gw.Close()
}
