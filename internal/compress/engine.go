package compress

import (
	"io"
	"net/http"

	"github.com/andrewsvn/encoding-overseer/internal/negotiate"
)

type CompressedResponseWriter interface {
	http.ResponseWriter
	Close() error
}

type WriteEngine interface {
	// Coding identifies the engine within the negotiable coding set
	Coding() negotiate.Coding

	// NewResponseWriter returns wrapped ResponseWriter to use in underlying handlers
	NewResponseWriter(w http.ResponseWriter, level int) (CompressedResponseWriter, error)

	// SetContentEncoding adds an http header to indicate that content is compressed by a certain algorithm
	SetContentEncoding(header http.Header)
}

type ReadEngine interface {
	Name() string

	// Applicable determines if engine can be used to read request body
	Applicable(header http.Header) bool
	// ReadAll extracts all data from reader decompressing it by underlying algorithm
	ReadAll(r io.Reader) ([]byte, error)
}

func checkContentEncoding(header http.Header, encodings ...string) bool {
	contentEncoding := header.Get("Content-Encoding")
	for _, encoding := range encodings {
		if encoding == contentEncoding {
			return true
		}
	}
	return false
}
