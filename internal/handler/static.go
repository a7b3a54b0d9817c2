package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
)

// ImageFileHandler serves materialized product images from the upload directory.
type ImageFileHandler struct {
	dir string
}

func NewImageFileHandler(dir string) *ImageFileHandler {
	return &ImageFileHandler{dir: dir}
}

func (h *ImageFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" || strings.Contains(name, "..") || strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		httputil.WriteErrorWithStatus(w, http.StatusForbidden, apperrors.New(apperrors.ErrCodeValidation, "Forbidden"))
		return
	}

	filePath := filepath.Join(h.dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(h.dir, filePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		httputil.WriteErrorWithStatus(w, http.StatusForbidden, apperrors.New(apperrors.ErrCodeValidation, "Forbidden"))
		return
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		httputil.WriteError(w, apperrors.NotFound("Image"))
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, filePath)
}
