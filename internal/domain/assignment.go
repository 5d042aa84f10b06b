package domain

import "time"

type ShiftSlot string

const (
	ShiftMorning   ShiftSlot = "morning"
	ShiftAfternoon ShiftSlot = "afternoon"
	ShiftEvening   ShiftSlot = "evening"
)

// RosterSlot identifies one cell of the weekly duty roster. PrevWeek selects
// the previous week's snapshot; it exists so Sunday tasks can be tied to the
// prior week's closing Saturday shift.
type RosterSlot struct {
	DayOfWeek int32     `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Shift     ShiftSlot `json:"shift"`
	PrevWeek  bool      `json:"prevWeek"`
}

type PayloadKind string

const (
	PayloadRosterLinked   PayloadKind = "roster"
	PayloadManuallyPinned PayloadKind = "manual"
)

// AssignmentPayload is the tagged variant carried by a task assignment.
// RosterLinked assignments follow whoever holds Slot on the duty roster and
// may name one additional person not derived from the roster. ManuallyPinned
// assignments are fixed to PersonID. Deadline is an optional HH:MM hint for
// when the task must be done.
type AssignmentPayload struct {
	Kind               PayloadKind `json:"kind"`
	Slot               *RosterSlot `json:"slot,omitempty"`
	AdditionalPersonID *int64      `json:"additionalPersonID,omitempty"`
	PersonID           *int64      `json:"personID,omitempty"`
	Deadline           *string     `json:"deadline,omitempty"`
}

// TaskAssignment is a persisted task-to-day assignment. At most one exists
// per (site, task, parade day); ID is zero until the row has been stored.
type TaskAssignment struct {
	ID        int64             `json:"id"`
	SiteID    int64             `json:"siteID"`
	TaskID    int64             `json:"taskID"`
	ParadeDay int32             `json:"paradeDay"`
	Payload   AssignmentPayload `json:"payload"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ParadeTask is a checklist item requiring assignment on parade days.
type ParadeTask struct {
	ID          int64     `json:"id"`
	SiteID      int64     `json:"siteID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

// ParadeDayConfig marks a day of week as active for a site's parade routine.
type ParadeDayConfig struct {
	ID        int64 `json:"id"`
	SiteID    int64 `json:"siteID"`
	DayOfWeek int32 `json:"dayOfWeek"`
	IsActive  bool  `json:"isActive"`
}
