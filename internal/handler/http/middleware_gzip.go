package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// maxInflatedBody caps a decompressed request body. Egg documents with
// their scripts stay well below it.
const maxInflatedBody = 8 << 20

var gzipReaders sync.Pool

// withGzipRequest inflates request bodies sent with "Content-Encoding: gzip"
// so handlers always read plain JSON or YAML. Responses are compressed by
// chi's Compress middleware.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !gzipEncoded(r.Header.Get("Content-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zr, _ := gzipReaders.Get().(*gzip.Reader)
		if zr == nil {
			zr = new(gzip.Reader)
		}
		if err := zr.Reset(r.Body); err != nil {
			gzipReaders.Put(zr)
			writeError(w, r, ErrInvalidGzip)
			return
		}

		body := &gzipBody{Reader: zr, source: r.Body}
		r.Body = http.MaxBytesReader(w, body, maxInflatedBody)
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

func gzipEncoded(header string) bool {
	encoding := strings.ToLower(strings.TrimSpace(header))
	return encoding == "gzip" || encoding == "x-gzip"
}

// gzipBody returns its reader to the pool on the first Close.
type gzipBody struct {
	*gzip.Reader
	source io.ReadCloser
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}

	zr := b.Reader
	b.Reader = nil
	_ = zr.Close()
	gzipReaders.Put(zr)
	return b.source.Close()
}
