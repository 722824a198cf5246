package middlewares

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
)

// BodyBuffer reads at most App.RequestBodyLimitInMegabyte of the request body
// and replaces the body with an in-memory reader. Larger bodies get a 413.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if limit <= 0 {
		limit = 1 << 20
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err, limit))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r)
	})
}
