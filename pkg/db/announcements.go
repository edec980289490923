package db

import (
	"fmt"
	"slices"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// ListAnnouncements returns every announcement in insertion order
func (db *DB) ListAnnouncements() []model.Announcement {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return slices.Clone(db.announcements)
}

// PartitionAnnouncements returns the announcements visible to the audience (targeted
// at it or at "all"), split into urgent and everything else. Relative order within
// each partition follows insertion order.
func (db *DB) PartitionAnnouncements(audience model.Audience) (urgent, other []model.Announcement) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, a := range db.announcements {
		if !a.VisibleTo(audience) {
			continue
		}
		if a.Priority == model.AnnouncementUrgent {
			urgent = append(urgent, a)
		} else {
			other = append(other, a)
		}
	}
	return urgent, other
}

// CreateAnnouncement stores the announcement under a fresh id. A zero timestamp
// is replaced with the store clock's current time.
func (db *DB) CreateAnnouncement(a model.Announcement) (model.Announcement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, err := db.nextID(func(id string) bool {
		return slices.ContainsFunc(db.announcements, func(x model.Announcement) bool { return x.ID == id })
	})
	if err != nil {
		return model.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	a.ID = id
	if a.Timestamp.IsZero() {
		a.Timestamp = db.now()
	}
	db.announcements = append(db.announcements, a)

	return a, nil
}
