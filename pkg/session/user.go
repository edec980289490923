package session

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// CurrentUser returns the signed-in user. A missing document, or one that cannot
// be decoded into a user, reads as signed out; a corrupted document is removed.
func (s *Store) CurrentUser() (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.get(UserKey)
	if err != nil {
		s.logger.Warn("Could not read session user", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		s.logger.Warn("Discarding corrupted session user", zap.Error(err))
		if rmErr := s.remove(UserKey); rmErr != nil {
			s.logger.Warn("Could not remove corrupted session user", zap.Error(rmErr))
		}
		return nil, false
	}

	return &user, true
}

// SetCurrentUser overwrites the stored user
func (s *Store) SetCurrentUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	return s.set(UserKey, data)
}

// ClearCurrentUser signs out. Clearing an empty session is not an error.
func (s *Store) ClearCurrentUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(UserKey)
}
