package compress

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDecompressor() *Decompressor {
	return NewDecompressor(zap.NewNop(), NewGzipReadEngine(), NewDeflateReadEngine())
}

func gzipped(t *testing.T, data string) io.Reader {
	t.Helper()
	var b bytes.Buffer
	gw := gzip.NewWriter(&b)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return &b
}

func deflated(t *testing.T, data string) io.Reader {
	t.Helper()
	var b bytes.Buffer
	zw := zlib.NewWriter(&b)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &b
}

func TestReadRequestBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            func(t *testing.T, data string) io.Reader
	}{
		{
			name:            "plain_body",
			contentEncoding: "",
			body: func(t *testing.T, data string) io.Reader {
				return bytes.NewBufferString(data)
			},
		},
		{
			name:            "gzip_body",
			contentEncoding: "gzip",
			body:            gzipped,
		},
		{
			name:            "deflate_body",
			contentEncoding: "deflate",
			body:            deflated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := newTestDecompressor()
			req := httptest.NewRequest(http.MethodPost, "/", test.body(t, "request payload"))
			if test.contentEncoding != "" {
				req.Header.Set("Content-Encoding", test.contentEncoding)
			}

			body, err := d.ReadRequestBody(req)
			require.NoError(t, err)
			assert.Equal(t, "request payload", string(body))
		})
	}
}

func TestReadRequestBodyCorrupted(t *testing.T) {
	d := newTestDecompressor()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")

	_, err := d.ReadRequestBody(req)
	assert.Error(t, err)
}
