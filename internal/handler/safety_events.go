package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (h *Handler) GetSafetyEvents(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	events, err := h.repository.GetSafetyEventsBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "safety events fetched", events)
}

func (h *Handler) CreateSafetyEvent(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)
	myInfo, err := h.requesterInfo(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var req struct {
		OccurredAt  time.Time `json:"occurredAt" validate:"required"`
		Severity    string    `json:"severity" validate:"required,oneof=near-miss minor major"`
		Description string    `json:"description" validate:"required"`
		PhotoKeys   []string  `json:"photoKeys"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := &domain.SafetyEvent{
		SiteID:      site.ID,
		ReporterID:  myInfo.ID,
		OccurredAt:  req.OccurredAt,
		Severity:    req.Severity,
		Description: req.Description,
		PhotoKeys:   req.PhotoKeys,
	}

	if err := h.repository.CreateSafetyEvent(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "safety event recorded", event)
}

func (h *Handler) DeleteSafetyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid safety event id")
		return
	}

	if err := h.repository.DeleteSafetyEvent(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "safety event not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "safety event deleted", nil)
}
