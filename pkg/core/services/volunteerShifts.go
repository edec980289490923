package services

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
)

// VolunteerShiftStore defines the store operations needed for a volunteer's schedule
type VolunteerShiftStore interface {
	ListEvents() []model.Event
	ListVolunteerShifts(volunteerID string) []model.Shift
	ListAttendance() []model.AttendanceRecord
	GetAttendanceStatus(volunteerID, shiftID string) model.AttendanceStatus
	TotalVolunteerHours(volunteerID string) float64
}

// ScheduledShift is one of a volunteer's shifts with their attendance on it
type ScheduledShift struct {
	Shift      model.Shift
	EventName  string
	Attendance model.AttendanceStatus
	Hours      float64
}

// VolunteerSchedule splits a volunteer's shifts around a reference time
type VolunteerSchedule struct {
	Upcoming       []ScheduledShift
	Past           []ScheduledShift
	CompletedCount int
	TotalHours     float64
}

// VolunteerShifts returns the volunteer's upcoming shifts (soonest first) and past shifts
// (most recent first). A shift is past once its start is not after now.
func VolunteerShifts(store VolunteerShiftStore, logger *zap.Logger, volunteerID string, now time.Time) *VolunteerSchedule {
	eventNames := make(map[string]string)
	for _, e := range store.ListEvents() {
		eventNames[e.ID] = e.Name
	}

	schedule := &VolunteerSchedule{
		TotalHours: store.TotalVolunteerHours(volunteerID),
	}

	for _, s := range store.ListVolunteerShifts(volunteerID) {
		entry := ScheduledShift{
			Shift:      s,
			EventName:  eventNames[s.EventID],
			Attendance: store.GetAttendanceStatus(volunteerID, s.ID),
			Hours:      db.ShiftHours(s),
		}
		if s.StartTime.After(now) {
			schedule.Upcoming = append(schedule.Upcoming, entry)
		} else {
			schedule.Past = append(schedule.Past, entry)
		}
	}

	slices.SortStableFunc(schedule.Upcoming, func(a, b ScheduledShift) int {
		return a.Shift.StartTime.Compare(b.Shift.StartTime)
	})
	slices.SortStableFunc(schedule.Past, func(a, b ScheduledShift) int {
		return b.Shift.StartTime.Compare(a.Shift.StartTime)
	})

	for _, r := range store.ListAttendance() {
		if r.VolunteerID == volunteerID && r.Status == model.AttendanceCompleted {
			schedule.CompletedCount++
		}
	}

	logger.Debug("Computed volunteer schedule",
		zap.String("volunteer_id", volunteerID),
		zap.Int("upcoming", len(schedule.Upcoming)),
		zap.Int("past", len(schedule.Past)))

	return schedule
}
