package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxPhotoSize = 10 << 20 // 10 MiB

func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.photos == nil {
		h.errorResponse(w, r, "photo storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		h.errorResponse(w, r, "invalid upload")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.errorResponse(w, r, "missing photo file")
		return
	}
	defer file.Close()

	kind := r.FormValue("kind")
	switch kind {
	case "inspection", "safety-event":
	default:
		h.errorResponse(w, r, "kind must be inspection or safety-event")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.photos.Put(r.Context(), kind, contentType, file)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "photo uploaded", map[string]string{"key": key})
}

func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	if h.photos == nil {
		h.errorResponse(w, r, "photo storage is not configured")
		return
	}

	key := chi.URLParam(r, "*")
	if key == "" {
		h.errorResponse(w, r, "missing photo key")
		return
	}

	body, contentType, err := h.photos.Get(r.Context(), key)
	if err != nil {
		h.errorResponse(w, r, "photo not found")
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		h.logInternalServerError(r, err)
	}
}
