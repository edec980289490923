package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
)

// ErrEventNotFound is returned when an event id does not resolve
var ErrEventNotFound = errors.New("event not found")

// EventOverviewStore defines the store operations needed for the event detail view
type EventOverviewStore interface {
	GetEvent(id string) (model.Event, bool)
	GetUser(id string) (model.User, bool)
	ListEventShifts(eventID string) []model.Shift
	ListShiftTasks(shiftID string) []model.Task
}

// ShiftDetail is a shift with its staffing, tasks and resolved volunteers.
// Assigned ids that do not resolve to a user are left out of Volunteers.
type ShiftDetail struct {
	Shift      model.Shift
	Staffing   model.Staffing
	Volunteers []model.User
	Tasks      []model.Task
}

// EventDetail is an event with its shifts and task status counts across all of them
type EventDetail struct {
	Event      model.Event
	Shifts     []ShiftDetail
	TaskCounts map[model.TaskStatus]int
}

// EventOverview gathers an event together with the detail of each of its shifts
func EventOverview(store EventOverviewStore, logger *zap.Logger, eventID string) (*EventDetail, error) {
	event, ok := store.GetEvent(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	detail := &EventDetail{
		Event: event,
		TaskCounts: map[model.TaskStatus]int{
			model.TaskAssigned:   0,
			model.TaskInProgress: 0,
			model.TaskCompleted:  0,
		},
	}

	for _, s := range store.ListEventShifts(eventID) {
		sd := ShiftDetail{
			Shift:    s,
			Staffing: db.StaffingRatio(s),
			Tasks:    store.ListShiftTasks(s.ID),
		}
		for _, id := range s.AssignedVolunteers {
			if u, ok := store.GetUser(id); ok {
				sd.Volunteers = append(sd.Volunteers, u)
			}
		}
		for _, t := range sd.Tasks {
			detail.TaskCounts[t.Status]++
		}
		detail.Shifts = append(detail.Shifts, sd)
	}

	logger.Debug("Computed event overview",
		zap.String("event_id", eventID),
		zap.Int("shifts", len(detail.Shifts)))

	return detail, nil
}
