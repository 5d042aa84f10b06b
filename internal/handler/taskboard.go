package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/outpost-ops/taskboard/backend/internal/taskboard"
)

type boardCell struct {
	TaskID     int64                  `json:"taskID"`
	ParadeDay  int32                  `json:"paradeDay"`
	Assignment *domain.TaskAssignment `json:"assignment"`
	Display    taskboard.DisplayInfo  `json:"display"`
}

type boardView struct {
	WeekStart  string                    `json:"weekStart"`
	Tasks      []*domain.ParadeTask      `json:"tasks"`
	ParadeDays []*domain.ParadeDayConfig `json:"paradeDays"`
	Cells      []boardCell               `json:"cells"`
}

type boardData struct {
	current     []*domain.DutyRoster
	previous    []*domain.DutyRoster
	people      []*domain.Person
	assignments []*domain.TaskAssignment
	tasks       []*domain.ParadeTask
	paradeDays  []*domain.ParadeDayConfig
}

// loadBoardData fetches the six row sets a board projection needs. The
// queries are independent, so they run concurrently; the first error wins.
func (h *Handler) loadBoardData(siteID int64, weekStart time.Time) (*boardData, error) {
	data := &boardData{}
	errs := make([]error, 6)

	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		data.current, errs[0] = h.repository.GetRosterWeek(siteID, weekStart)
	}()
	go func() {
		defer wg.Done()
		data.previous, errs[1] = h.repository.GetRosterWeek(siteID, weekStart.AddDate(0, 0, -7))
	}()
	go func() {
		defer wg.Done()
		data.people, errs[2] = h.repository.GetPeopleBySite(siteID)
	}()
	go func() {
		defer wg.Done()
		data.assignments, errs[3] = h.repository.GetAssignmentsBySite(siteID)
	}()
	go func() {
		defer wg.Done()
		data.tasks, errs[4] = h.repository.GetTasksBySite(siteID)
	}()
	go func() {
		defer wg.Done()
		data.paradeDays, errs[5] = h.repository.GetParadeDaysBySite(siteID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// projectBoard renders one cell per active task and active parade day. Cells
// without an assignment still appear, with a zero Display, so the client can
// draw the full grid.
func projectBoard(data *boardData, weekStart time.Time) boardView {
	roster := taskboard.NewRoster(data.current, data.previous, data.people)
	board := taskboard.NewBoard(data.assignments, roster)

	view := boardView{
		WeekStart:  weekStart.Format("2006-01-02"),
		Tasks:      data.tasks,
		ParadeDays: data.paradeDays,
	}

	for _, task := range data.tasks {
		if !task.IsActive {
			continue
		}
		for _, day := range data.paradeDays {
			if !day.IsActive {
				continue
			}
			a := board.EffectiveAssignment(task.ID, day.DayOfWeek)
			view.Cells = append(view.Cells, boardCell{
				TaskID:     task.ID,
				ParadeDay:  day.DayOfWeek,
				Assignment: a,
				Display:    board.Describe(a),
			})
		}
	}

	return view
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.loadBoardData(site.ID, weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "board fetched", projectBoard(data, weekStart))
}

type boardEdit struct {
	TaskID    int64                     `json:"taskID" validate:"required"`
	ParadeDay int32                     `json:"paradeDay" validate:"min=0,max=6"`
	Action    string                    `json:"action" validate:"required,oneof=replace clear"`
	Payload   *domain.AssignmentPayload `json:"payload"`
}

// SaveBoard takes a batch of cell edits, diffs them against the stored
// assignments and writes the difference. The storage has no multi-row
// transaction, so a save can land partially; failures come back in the
// response next to the reloaded board, which reflects whatever committed.
func (h *Handler) SaveBoard(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	var req struct {
		Edits []boardEdit `json:"edits" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weekStart := weekStartOf(time.Now())

	data, err := h.loadBoardData(site.ID, weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	siteTasks := make(map[int64]bool, len(data.tasks))
	for _, task := range data.tasks {
		siteTasks[task.ID] = true
	}
	activeDays := make(map[int32]bool, len(data.paradeDays))
	for _, day := range data.paradeDays {
		if day.IsActive {
			activeDays[day.DayOfWeek] = true
		}
	}

	overlay := taskboard.NewOverlay()
	for _, edit := range req.Edits {
		if !siteTasks[edit.TaskID] {
			h.errorResponse(w, r, "unknown task on this site")
			return
		}
		if !activeDays[edit.ParadeDay] {
			h.errorResponse(w, r, "not a parade day on this site")
			return
		}

		switch edit.Action {
		case "clear":
			overlay.SetClear(edit.TaskID, edit.ParadeDay)
		case "replace":
			if edit.Payload == nil {
				h.errorResponse(w, r, "replace edit needs a payload")
				return
			}
			if err := overlay.SetReplace(edit.TaskID, edit.ParadeDay, *edit.Payload); err != nil {
				h.errorResponse(w, r, err.Error())
				return
			}
		}
	}

	stored := make(map[taskboard.Key]*domain.TaskAssignment, len(data.assignments))
	for _, a := range data.assignments {
		stored[taskboard.Key{TaskID: a.TaskID, ParadeDay: a.ParadeDay}] = a
	}

	cs := taskboard.Compile(overlay, stored)
	result := taskboard.Apply(h.repository, site.ID, cs)

	// reload regardless of outcome so the view converges on what committed
	data, err = h.loadBoardData(site.ID, weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var failures []string
	if result.Failed() {
		if result.DeleteErr != nil {
			failures = append(failures, "some removals did not apply")
		}
		if len(result.UpdateErrs) > 0 {
			failures = append(failures, "some changes did not apply")
		}
		if result.InsertErr != nil {
			failures = append(failures, "some new assignments did not apply")
		}
	}

	msg := "board saved"
	if len(failures) > 0 {
		msg = "board partially saved"
	}

	h.successResponse(w, r, msg, map[string]any{
		"inserted": len(cs.ToInsert),
		"updated":  len(cs.ToUpdate),
		"deleted":  len(cs.ToDelete),
		"failures": failures,
		"board":    projectBoard(data, weekStart),
	})
}
