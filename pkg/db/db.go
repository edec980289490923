package db

import (
	"sync"
	"time"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// DB is the in-memory domain store. It owns every entity collection and is the
// only place they are mutated. Entities handed out are copies.
type DB struct {
	mu sync.RWMutex

	users         []model.User
	events        []model.Event
	shifts        []model.Shift
	tasks         []model.Task
	announcements []model.Announcement
	attendance    []model.AttendanceRecord

	now   func() time.Time
	newID func() (string, error)
}

// Option configures a DB
type Option func(*DB)

// WithClock overrides the clock used to default announcement timestamps
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

// withIDSource swaps the id generator; used by tests to force collisions
func withIDSource(gen func() (string, error)) Option {
	return func(db *DB) {
		db.newID = gen
	}
}

// NewDB creates an empty store
func NewDB(opts ...Option) *DB {
	db := &DB{
		now:   time.Now,
		newID: randomID,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Snapshot is a full set of collections used to populate a store
type Snapshot struct {
	Users         []model.User             `yaml:"users"`
	Events        []model.Event            `yaml:"events"`
	Shifts        []model.Shift            `yaml:"shifts"`
	Tasks         []model.Task             `yaml:"tasks"`
	Announcements []model.Announcement     `yaml:"announcements"`
	Attendance    []model.AttendanceRecord `yaml:"attendance"`
}

// NewDBFromSnapshot creates a store preloaded with copies of the snapshot's entities
func NewDBFromSnapshot(snap Snapshot, opts ...Option) *DB {
	db := NewDB(opts...)
	for _, u := range snap.Users {
		db.users = append(db.users, u.Clone())
	}
	db.events = append(db.events, snap.Events...)
	for _, s := range snap.Shifts {
		db.shifts = append(db.shifts, s.Clone())
	}
	for _, t := range snap.Tasks {
		db.tasks = append(db.tasks, t.Clone())
	}
	db.announcements = append(db.announcements, snap.Announcements...)
	for _, r := range snap.Attendance {
		db.attendance = append(db.attendance, r.Clone())
	}
	return db
}
