package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

// weekStartOf returns the Sunday that opens the week containing t, at
// midnight UTC. Roster rows are keyed on this date.
func weekStartOf(t time.Time) time.Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	weekStart := weekStartOf(time.Now())
	if param := r.URL.Query().Get("weekStart"); param != "" {
		parsed, err := time.Parse("2006-01-02", param)
		if err != nil {
			h.errorResponse(w, r, "invalid weekStart, want YYYY-MM-DD")
			return
		}
		weekStart = weekStartOf(parsed)
	}

	days, err := h.repository.GetRosterWeek(site.ID, weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "roster fetched", map[string]any{
		"weekStart": weekStart.Format("2006-01-02"),
		"days":      days,
	})
}

func (h *Handler) UpsertRosterDay(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	var req struct {
		WeekStart   string `json:"weekStart" validate:"required"`
		DayOfWeek   int32  `json:"dayOfWeek" validate:"min=0,max=6"`
		MorningID   *int64 `json:"morningID"`
		AfternoonID *int64 `json:"afternoonID"`
		EveningID   *int64 `json:"eveningID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		h.errorResponse(w, r, "invalid weekStart, want YYYY-MM-DD")
		return
	}

	day := &domain.DutyRoster{
		SiteID:      site.ID,
		WeekStart:   weekStartOf(weekStart),
		DayOfWeek:   req.DayOfWeek,
		MorningID:   req.MorningID,
		AfternoonID: req.AfternoonID,
		EveningID:   req.EveningID,
	}

	if err := h.repository.UpsertRosterDay(day); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "roster was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "roster day saved", day)
}
