package db

import (
	"fmt"
	"slices"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// ListEvents returns every event in insertion order
func (db *DB) ListEvents() []model.Event {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return slices.Clone(db.events)
}

// GetEvent looks up an event by id
func (db *DB) GetEvent(id string) (model.Event, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, e := range db.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// CreateEvent stores the event under a fresh id, ignoring any id already set,
// and returns the stored entity
func (db *DB) CreateEvent(event model.Event) (model.Event, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, err := db.nextID(func(id string) bool {
		return slices.ContainsFunc(db.events, func(e model.Event) bool { return e.ID == id })
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	event.ID = id
	db.events = append(db.events, event)

	return event, nil
}
