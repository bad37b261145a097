package http

import "net/http"

// maxBodyBytes caps request bodies at 5 MiB. Registration payloads may carry
// a base64-encoded profile picture, which is why the cap is this generous.
const maxBodyBytes = 5 << 20

// withBodyLimit rejects request bodies larger than maxBodyBytes. Reads past
// the cap fail inside the JSON decoder, so oversized payloads surface as a
// 400 rather than exhausting memory.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
