package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

// ErrorBody is the API error envelope:
// {"error":"...","details":"..."}
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes the error envelope.
func Fail(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, ErrorBody{Error: message, Details: details})
}

// Err maps a domain error to its HTTP status and error body. Anything outside
// the domain taxonomy stays in the logs and turns into a generic 500.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal error", "")
		return
	}

	var de *domain.Error
	if errors.As(err, &de) {
		status := statusFromKind(de.Kind)
		if status >= http.StatusInternalServerError {
			zlog.Error().Err(err).Str("kind", string(de.Kind)).Msg("request failed")
		}
		Fail(w, status, de.Message, de.Details)
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal error", "")
}

func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindReferential, domain.KindStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
