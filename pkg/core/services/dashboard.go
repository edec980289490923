package services

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
)

// DashboardStore defines the store operations needed for the organizer dashboard
type DashboardStore interface {
	ListEvents() []model.Event
	ListUsersByRole(role model.Role) []model.User
	ListShifts() []model.Shift
	CountAttendanceByStatus(status model.AttendanceStatus) int
}

// UpcomingShift is a shift that has not started yet, with its staffing
type UpcomingShift struct {
	Shift     model.Shift
	EventName string
	Staffing  model.Staffing
}

// DashboardStats is the organizer's overview
type DashboardStats struct {
	ActiveEvents int
	TotalEvents  int
	Volunteers   int
	OpenShifts   int
	TotalShifts  int
	CheckedIn    int
	Upcoming     []UpcomingShift
}

// OrganizerDashboard computes headline counts and the next upcomingLimit shifts starting after now
func OrganizerDashboard(store DashboardStore, logger *zap.Logger, now time.Time, upcomingLimit int) *DashboardStats {
	events := store.ListEvents()
	shifts := store.ListShifts()

	stats := &DashboardStats{
		TotalEvents: len(events),
		Volunteers:  len(store.ListUsersByRole(model.RoleVolunteer)),
		TotalShifts: len(shifts),
		CheckedIn:   store.CountAttendanceByStatus(model.AttendanceCheckedIn),
	}

	eventNames := make(map[string]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
		if e.Status == model.EventActive {
			stats.ActiveEvents++
		}
	}

	var upcoming []model.Shift
	for _, s := range shifts {
		if s.Status == model.ShiftOpen {
			stats.OpenShifts++
		}
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b model.Shift) int {
		return a.StartTime.Compare(b.StartTime)
	})
	if upcomingLimit >= 0 && len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	for _, s := range upcoming {
		stats.Upcoming = append(stats.Upcoming, UpcomingShift{
			Shift:     s,
			EventName: eventNames[s.EventID],
			Staffing:  db.StaffingRatio(s),
		})
	}

	logger.Debug("Computed dashboard",
		zap.Int("events", stats.TotalEvents),
		zap.Int("shifts", stats.TotalShifts),
		zap.Int("upcoming", len(stats.Upcoming)))

	return stats
}
