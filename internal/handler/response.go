package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

// writeError logs anything that is not an AppError before it is masked as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if !apperrors.IsAppError(err) {
		log.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	}
	httputil.WriteError(w, err)
}

func listResponse(key string, count int, items any) map[string]any {
	return map[string]any{
		"count": count,
		key:     items,
	}
}
