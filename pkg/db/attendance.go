package db

import "github.com/jakechorley/crewsync/pkg/core/model"

// ListAttendance returns every attendance record in insertion order
func (db *DB) ListAttendance() []model.AttendanceRecord {
	db.mu.RLock()
	defer db.mu.RUnlock()

	records := make([]model.AttendanceRecord, 0, len(db.attendance))
	for _, r := range db.attendance {
		records = append(records, r.Clone())
	}
	return records
}

// GetAttendanceStatus returns the status of the first record for the pair,
// or scheduled when no record exists. It never fails.
func (db *DB) GetAttendanceStatus(volunteerID, shiftID string) model.AttendanceStatus {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, r := range db.attendance {
		if r.VolunteerID == volunteerID && r.ShiftID == shiftID {
			return r.Status
		}
	}
	return model.AttendanceScheduled
}

// CountAttendanceByStatus counts records with the given status
func (db *DB) CountAttendanceByStatus(status model.AttendanceStatus) int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	count := 0
	for _, r := range db.attendance {
		if r.Status == status {
			count++
		}
	}
	return count
}
