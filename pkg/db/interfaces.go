package db

import "github.com/jakechorley/crewsync/pkg/core/model"

// UserStore defines the user operations of the store
type UserStore interface {
	ListUsers() []model.User
	ListUsersByRole(role model.Role) []model.User
	GetUser(id string) (model.User, bool)
	RegisterUser(reg model.Registration) (model.User, error)
	Authenticate(email, password string) (model.User, error)
}

// EventStore defines the event operations of the store
type EventStore interface {
	ListEvents() []model.Event
	GetEvent(id string) (model.Event, bool)
	CreateEvent(event model.Event) (model.Event, error)
}

// ShiftStore defines the shift operations of the store
type ShiftStore interface {
	ListShifts() []model.Shift
	GetShift(id string) (model.Shift, bool)
	ListEventShifts(eventID string) []model.Shift
	ListVolunteerShifts(volunteerID string) []model.Shift
	CreateShift(shift model.Shift) (model.Shift, error)
	TotalVolunteerHours(volunteerID string) float64
}

// TaskStore defines the task operations of the store
type TaskStore interface {
	ListTasks() []model.Task
	ListVolunteerTasks(volunteerID string) []model.Task
	ListShiftTasks(shiftID string) []model.Task
}

// AnnouncementStore defines the announcement operations of the store
type AnnouncementStore interface {
	ListAnnouncements() []model.Announcement
	PartitionAnnouncements(audience model.Audience) (urgent, other []model.Announcement)
	CreateAnnouncement(a model.Announcement) (model.Announcement, error)
}

// AttendanceStore defines the attendance operations of the store
type AttendanceStore interface {
	ListAttendance() []model.AttendanceRecord
	GetAttendanceStatus(volunteerID, shiftID string) model.AttendanceStatus
	CountAttendanceByStatus(status model.AttendanceStatus) int
}

// Database is the full store surface. *DB implements it.
type Database interface {
	UserStore
	EventStore
	ShiftStore
	TaskStore
	AnnouncementStore
	AttendanceStore
}

var _ Database = (*DB)(nil)
