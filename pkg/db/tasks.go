package db

import "github.com/jakechorley/crewsync/pkg/core/model"

// ListTasks returns every task in insertion order
func (db *DB) ListTasks() []model.Task {
	return db.filterTasks(func(model.Task) bool { return true })
}

// ListVolunteerTasks returns the tasks assigned to a volunteer
func (db *DB) ListVolunteerTasks(volunteerID string) []model.Task {
	return db.filterTasks(func(t model.Task) bool { return t.VolunteerID == volunteerID })
}

// ListShiftTasks returns the tasks attached to a shift
func (db *DB) ListShiftTasks(shiftID string) []model.Task {
	return db.filterTasks(func(t model.Task) bool { return t.ShiftID == shiftID })
}

func (db *DB) filterTasks(keep func(model.Task) bool) []model.Task {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var tasks []model.Task
	for _, t := range db.tasks {
		if keep(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks
}
