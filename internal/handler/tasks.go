package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	tasks, err := h.repository.GetTasksBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tasks fetched", tasks)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := &domain.ParadeTask{
		SiteID:      site.ID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := h.repository.CreateTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task created", task)
}

func (h *Handler) siteTaskFromURL(w http.ResponseWriter, r *http.Request) *domain.ParadeTask {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid task id")
		return nil
	}

	task, err := h.repository.GetTaskByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "task not found")
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}

	if task.SiteID != site.ID {
		h.errorResponse(w, r, "task not found")
		return nil
	}

	return task
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	task := h.siteTaskFromURL(w, r)
	if task == nil {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateTask(task); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "task was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "task updated", task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task := h.siteTaskFromURL(w, r)
	if task == nil {
		return
	}

	if err := h.repository.DeleteTask(task.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "task not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "task deleted", nil)
}

func (h *Handler) GetParadeDays(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	days, err := h.repository.GetParadeDaysBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "parade days fetched", days)
}

func (h *Handler) SetParadeDay(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	var req struct {
		DayOfWeek int32 `json:"dayOfWeek" validate:"min=0,max=6"`
		IsActive  bool  `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day := &domain.ParadeDayConfig{
		SiteID:    site.ID,
		DayOfWeek: req.DayOfWeek,
		IsActive:  req.IsActive,
	}

	if err := h.repository.SetParadeDay(day); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "parade day saved", day)
}
