package middlewares

import (
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
)

const maxClientRequestIDLength = 64

// RequestIDMiddleware propagates X-Request-ID. A missing, oversized or
// non-printable client id is replaced with a generated one.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if !isUsableRequestID(requestID) {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(utils.WithRequestID(r.Context(), requestID)))
	})
}

func isUsableRequestID(id string) bool {
	if id == "" || len(id) > maxClientRequestIDLength {
		return false
	}
	for _, c := range id {
		if c < '!' || c > '~' {
			return false
		}
	}
	return true
}
