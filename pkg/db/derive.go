package db

import (
	"time"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// StaffingRatio compares assigned volunteers against the requirement.
// Understaffed is exactly Assigned < Required.
func StaffingRatio(shift model.Shift) model.Staffing {
	assigned := len(shift.AssignedVolunteers)
	return model.Staffing{
		Assigned:     assigned,
		Required:     shift.RequiredVolunteers,
		Understaffed: assigned < shift.RequiredVolunteers,
	}
}

// ShiftHours is the shift length in hours, clamped to zero for ranges where
// the end is not after the start
func ShiftHours(shift model.Shift) float64 {
	d := shift.Duration()
	if d <= 0 {
		return 0
	}
	return d.Hours()
}

// TotalVolunteerHours sums ShiftHours over every shift the volunteer is assigned to
func (db *DB) TotalVolunteerHours(volunteerID string) float64 {
	total := 0.0
	for _, s := range db.ListVolunteerShifts(volunteerID) {
		total += ShiftHours(s)
	}
	return total
}

// SameDay reports whether two instants fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
