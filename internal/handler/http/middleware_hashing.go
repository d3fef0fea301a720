package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
)

const hashHeader = "HashSHA256"

// withHashing verifies the HashSHA256 header of signed request bodies and
// signs every response body with the same header. It is a pass-through when
// no hash key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		if signature := r.Header.Get(hashHeader); signature != "" && r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				utils.WriteError(w, "failed to read request body", http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !utils.VerifyHashString(body, h.hashKey, signature) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				utils.WriteError(w, "integrity check failed", http.StatusBadRequest)
				return
			}
		}

		bw := newBufferedResponseWriter()
		next.ServeHTTP(bw, r)

		if len(bw.body) > 0 {
			bw.header.Set(hashHeader, utils.HashString(bw.body, h.hashKey))
		}
		bw.flushTo(w)
	})
}
