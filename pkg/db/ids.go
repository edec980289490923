package db

import (
	"fmt"

	"github.com/google/uuid"
)

// maxIDAttempts bounds the collision retry loop
const maxIDAttempts = 8

func randomID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// nextID returns an id not present according to taken. Callers hold the write lock.
func (db *DB) nextID(taken func(id string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := db.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate id: %w", err)
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique id after %d attempts", maxIDAttempts)
}
