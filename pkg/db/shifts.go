package db

import (
	"fmt"
	"slices"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// ListShifts returns every shift in insertion order
func (db *DB) ListShifts() []model.Shift {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.filterShifts(func(model.Shift) bool { return true })
}

// GetShift looks up a shift by id
func (db *DB) GetShift(id string) (model.Shift, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, s := range db.shifts {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return model.Shift{}, false
}

// ListEventShifts returns the shifts belonging to an event
func (db *DB) ListEventShifts(eventID string) []model.Shift {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.filterShifts(func(s model.Shift) bool { return s.EventID == eventID })
}

// ListVolunteerShifts returns the shifts the volunteer is assigned to
func (db *DB) ListVolunteerShifts(volunteerID string) []model.Shift {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.filterShifts(func(s model.Shift) bool { return s.HasVolunteer(volunteerID) })
}

// CreateShift stores the shift under a fresh id and returns the stored entity.
// Time range, staffing and volunteer references are not checked here.
func (db *DB) CreateShift(shift model.Shift) (model.Shift, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, err := db.nextID(func(id string) bool {
		return slices.ContainsFunc(db.shifts, func(s model.Shift) bool { return s.ID == id })
	})
	if err != nil {
		return model.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	shift = shift.Clone()
	shift.ID = id
	if shift.AssignedVolunteers == nil {
		shift.AssignedVolunteers = []string{}
	}
	db.shifts = append(db.shifts, shift)

	return shift.Clone(), nil
}

// filterShifts returns copies of matching shifts. Callers hold the lock.
func (db *DB) filterShifts(keep func(model.Shift) bool) []model.Shift {
	var shifts []model.Shift
	for _, s := range db.shifts {
		if keep(s) {
			shifts = append(shifts, s.Clone())
		}
	}
	return shifts
}
