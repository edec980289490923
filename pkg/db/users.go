package db

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// MinPasswordLength is the shortest password the mock authenticator accepts
const MinPasswordLength = 6

// ListUsers returns every user in insertion order
func (db *DB) ListUsers() []model.User {
	db.mu.RLock()
	defer db.mu.RUnlock()

	users := make([]model.User, 0, len(db.users))
	for _, u := range db.users {
		users = append(users, u.Clone())
	}
	return users
}

// ListUsersByRole returns the users with the given role in insertion order
func (db *DB) ListUsersByRole(role model.Role) []model.User {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var users []model.User
	for _, u := range db.users {
		if u.Role == role {
			users = append(users, u.Clone())
		}
	}
	return users
}

// GetUser looks up a user by id
func (db *DB) GetUser(id string) (model.User, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, u := range db.users {
		if u.ID == id {
			return u.Clone(), true
		}
	}
	return model.User{}, false
}

// findUserByEmail matches case-insensitively. Callers hold the lock.
func (db *DB) findUserByEmail(email string) (model.User, bool) {
	for _, u := range db.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// RegisterUser appends a new user with a fresh id.
// Fails with model.ErrDuplicateEmail when the email is already taken, ignoring case;
// the collection is left untouched in that case.
func (db *DB) RegisterUser(reg model.Registration) (model.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.findUserByEmail(reg.Email); exists {
		return model.User{}, model.ErrDuplicateEmail
	}

	id, err := db.nextID(func(id string) bool {
		return slices.ContainsFunc(db.users, func(u model.User) bool { return u.ID == id })
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to register user: %w", err)
	}

	user := model.User{
		ID:           id,
		Name:         reg.Name,
		Email:        reg.Email,
		Role:         reg.Role,
		Phone:        reg.Phone,
		Skills:       slices.Clone(reg.Skills),
		Availability: slices.Clone(reg.Availability),
	}
	db.users = append(db.users, user)

	return user.Clone(), nil
}

// Authenticate is a mock credential check: any password of at least
// MinPasswordLength characters is accepted for a known email.
// A short password fails with model.ErrWeakPassword whether or not the email exists.
func (db *DB) Authenticate(email, password string) (model.User, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return model.User{}, fmt.Errorf("%w: must be at least %d characters", model.ErrWeakPassword, MinPasswordLength)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	user, ok := db.findUserByEmail(email)
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user.Clone(), nil
}
