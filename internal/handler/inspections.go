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

func (h *Handler) GetInspections(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	inspections, err := h.repository.GetInspectionsBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "inspections fetched", inspections)
}

func (h *Handler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)
	myInfo, err := h.requesterInfo(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var req struct {
		HeldAt    time.Time `json:"heldAt" validate:"required"`
		Score     int32     `json:"score" validate:"min=0,max=100"`
		Notes     string    `json:"notes"`
		PhotoKeys []string  `json:"photoKeys"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	insp := &domain.Inspection{
		SiteID:      site.ID,
		InspectorID: myInfo.ID,
		HeldAt:      req.HeldAt,
		Score:       req.Score,
		Notes:       req.Notes,
		PhotoKeys:   req.PhotoKeys,
	}

	if err := h.repository.CreateInspection(insp); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "inspection recorded", insp)
}

func (h *Handler) UpdateInspection(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid inspection id")
		return
	}

	inspections, err := h.repository.GetInspectionsBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var insp *domain.Inspection
	for _, candidate := range inspections {
		if candidate.ID == id {
			insp = candidate
			break
		}
	}
	if insp == nil {
		h.errorResponse(w, r, "inspection not found")
		return
	}

	var req struct {
		Score     *int32    `json:"score" validate:"omitempty,min=0,max=100"`
		Notes     *string   `json:"notes"`
		PhotoKeys *[]string `json:"photoKeys"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Score != nil {
		insp.Score = *req.Score
	}
	if req.Notes != nil {
		insp.Notes = *req.Notes
	}
	if req.PhotoKeys != nil {
		insp.PhotoKeys = *req.PhotoKeys
	}

	if err := h.repository.UpdateInspection(insp); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "inspection was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "inspection updated", insp)
}

func (h *Handler) DeleteInspection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid inspection id")
		return
	}

	if err := h.repository.DeleteInspection(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "inspection not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "inspection deleted", nil)
}
