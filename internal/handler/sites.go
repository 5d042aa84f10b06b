package handler

import "net/http"

func (h *Handler) GetAllSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.repository.GetAllSites()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "sites fetched", sites)
}
