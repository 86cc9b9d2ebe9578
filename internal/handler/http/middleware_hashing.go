package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/refgame/internal/utils"
)

// hashHeader carries the hex-encoded HMAC-SHA256 signature of the request
// body. The trainer computes it over the exact bytes it sends.
const hashHeader = "HashSHA256"

// verifySignature checks the upload body signature when a hash key is
// configured. Requests without a matching signature are rejected before the
// body reaches the handler.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		signature := r.Header.Get(hashHeader)
		if signature == "" {
			h.logger.Error().Str("func", "*Handler.verifySignature").Msg("missing body signature")
			http.Error(w, "missing body signature", http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.ValidHash(body, signature, h.hashKey) {
			h.logger.Error().Str("func", "*Handler.verifySignature").
				Str("hash from request", signature).
				Msg("body signature mismatch")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
