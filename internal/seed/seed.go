package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/outpost-ops/taskboard/backend/internal/config"
	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/outpost-ops/taskboard/backend/internal/repository"
	"github.com/outpost-ops/taskboard/backend/internal/taskboard"
	"github.com/outpost-ops/taskboard/backend/internal/utils"
)

var demoTasks = []struct {
	name        string
	description string
}{
	{"Sweep parade ground", "Full sweep of the square before the morning lineup"},
	{"Clean latrines", "Scrub and restock the latrine block"},
	{"Wash vehicles", "Rinse and wipe down the duty vehicles"},
	{"Empty bins", "Collect and empty every bin on the compound"},
	{"Tidy mess hall", "Wipe tables and mop the mess hall floor"},
	{"Polish entrance", "Clean the gate area and the entrance signage"},
}

func weekStartOf(t time.Time) time.Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

func randomPersonID(people []*domain.Person) *int64 {
	// leave roughly one in five shifts unmanned, a state the board must handle
	if rand.Intn(5) == 0 {
		return nil
	}
	id := people[rand.Intn(len(people))].ID
	return &id
}

// SeedDemoSite builds one fully populated site: people, two roster weeks,
// tasks, parade days and a mixed batch of assignments.
func SeedDemoSite(cfg *config.Config, repo *repository.Repository) {
	site := &domain.Site{Name: "Outpost North"}
	if err := repo.CreateSite(site); err != nil {
		slog.Error("could not create site", "error", err)
		return
	}

	people := make([]*domain.Person, 0, 12)
	for i := 0; i < 12; i++ {
		person, err := utils.GenerateRandomPerson(site.ID, cfg.Seed.User.Password, "outpost-ops.example")
		if err != nil {
			slog.Error("could not generate person", "error", err)
			continue
		}
		if err := repo.CreatePerson(person); err != nil {
			slog.Error("could not insert person", "error", err)
			continue
		}
		people = append(people, person)
	}
	if len(people) == 0 {
		slog.Error("no people inserted, aborting")
		return
	}

	thisWeek := weekStartOf(time.Now())
	for _, weekStart := range []time.Time{thisWeek.AddDate(0, 0, -7), thisWeek} {
		for day := int32(0); day < 7; day++ {
			roster := &domain.DutyRoster{
				SiteID:      site.ID,
				WeekStart:   weekStart,
				DayOfWeek:   day,
				MorningID:   randomPersonID(people),
				AfternoonID: randomPersonID(people),
				EveningID:   randomPersonID(people),
			}
			if err := repo.UpsertRosterDay(roster); err != nil {
				slog.Error("could not insert roster day", "error", err)
			}
		}
	}

	tasks := make([]*domain.ParadeTask, 0, len(demoTasks))
	for _, t := range demoTasks {
		task := &domain.ParadeTask{
			SiteID:      site.ID,
			Name:        t.name,
			Description: t.description,
			IsActive:    true,
		}
		if err := repo.CreateTask(task); err != nil {
			slog.Error("could not insert task", "error", err)
			continue
		}
		tasks = append(tasks, task)
	}

	paradeDays := []int32{0, 2, 4}
	for _, day := range paradeDays {
		if err := repo.SetParadeDay(&domain.ParadeDayConfig{
			SiteID:    site.ID,
			DayOfWeek: day,
			IsActive:  true,
		}); err != nil {
			slog.Error("could not set parade day", "error", err)
		}
	}

	shifts := []domain.ShiftSlot{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftEvening}
	inserts := make([]taskboard.Insert, 0, len(tasks)*len(paradeDays))
	for _, task := range tasks {
		for _, day := range paradeDays {
			var payload domain.AssignmentPayload
			if rand.Intn(3) == 0 {
				payload = domain.AssignmentPayload{
					Kind:     domain.PayloadManuallyPinned,
					PersonID: randomPersonID(people),
				}
				if payload.PersonID == nil {
					continue
				}
			} else {
				slotDay := day
				prevWeek := false
				if day == 0 {
					// Sunday tasks follow the previous week's closing Saturday shift
					slotDay = 6
					prevWeek = true
				}
				payload = domain.AssignmentPayload{
					Kind: domain.PayloadRosterLinked,
					Slot: &domain.RosterSlot{
						DayOfWeek: slotDay,
						Shift:     shifts[rand.Intn(len(shifts))],
						PrevWeek:  prevWeek,
					},
					AdditionalPersonID: randomPersonID(people),
				}
			}

			inserts = append(inserts, taskboard.Insert{
				TaskID:    task.ID,
				ParadeDay: day,
				Payload:   payload,
			})
		}
	}

	if err := repo.BulkInsertAssignments(site.ID, inserts); err != nil {
		slog.Error("could not insert assignments", "error", err)
		return
	}

	slog.Info("demo site seeded", "site_id", site.ID, "people", len(people), "tasks", len(tasks), "assignments", len(inserts))
}
