package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	appctx "github.com/NipunDemintha/sustainable-shopping-planner/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID keeps the caller's X-Request-Id when one is supplied, so a
// request stays traceable across the planner and the analysis agents, and
// mints a fresh id otherwise. The id is echoed back and stored in the
// request context for the access log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderXRequestID))
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, id)
		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), id)))
	})
}
