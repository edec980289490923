package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// CreateEventStore defines the store operations needed for creating events
type CreateEventStore interface {
	GetUser(id string) (model.User, bool)
	CreateEvent(event model.Event) (model.Event, error)
}

// EventForm is the create-event form as submitted by an organizer
type EventForm struct {
	Name        string            `validate:"required"`
	Date        time.Time         `validate:"-"`
	Location    string            `validate:"required"`
	Description string            `validate:"required"`
	Status      model.EventStatus `validate:"omitempty,oneof=planning active completed"`
}

// CreateEvent validates the form and stores a new event owned by organizerID.
// Status defaults to planning.
func CreateEvent(store CreateEventStore, logger *zap.Logger, organizerID string, form EventForm) (*model.Event, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Location = strings.TrimSpace(form.Location)
	form.Description = strings.TrimSpace(form.Description)

	if err := validateForm(form); err != nil {
		return nil, err
	}
	if form.Date.IsZero() {
		return nil, invalid("Date is required")
	}

	organizer, ok := store.GetUser(organizerID)
	if !ok {
		return nil, fmt.Errorf("organizer %q: %w", organizerID, model.ErrUserNotFound)
	}
	if organizer.Role != model.RoleOrganizer {
		return nil, invalid("user %s is not an organizer", organizerID)
	}

	status := form.Status
	if status == "" {
		status = model.EventPlanning
	}

	logger.Debug("Creating event",
		zap.String("name", form.Name),
		zap.String("organizer_id", organizerID),
		zap.String("status", string(status)))

	event, err := store.CreateEvent(model.Event{
		Name:        form.Name,
		Date:        form.Date,
		Location:    form.Location,
		Description: form.Description,
		OrganizerID: organizerID,
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event created", zap.String("event_id", event.ID), zap.String("name", event.Name))
	return &event, nil
}
