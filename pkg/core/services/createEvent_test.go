package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

func validEventForm() EventForm {
	return EventForm{
		Name:        "Open Day",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:    "Main Quad",
		Description: "Campus tours for prospective students",
	}
}

func TestCreateEvent_DefaultsToPlanning(t *testing.T) {
	store := newSeededStore(t)

	event, err := CreateEvent(store, zap.NewNop(), "1", validEventForm())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, model.EventPlanning, event.Status)
	assert.Equal(t, "1", event.OrganizerID)

	stored, ok := store.GetEvent(event.ID)
	require.True(t, ok)
	assert.Equal(t, *event, stored)
	assert.Len(t, store.ListEvents(), 3)
}

func TestCreateEvent_KeepsExplicitStatus(t *testing.T) {
	form := validEventForm()
	form.Status = model.EventActive

	event, err := CreateEvent(newSeededStore(t), zap.NewNop(), "1", form)

	require.NoError(t, err)
	assert.Equal(t, model.EventActive, event.Status)
}

func TestCreateEvent_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		organizerID string
		modify      func(f *EventForm)
		wantErr     error
		wantMsg     string
	}{
		{name: "missing name", organizerID: "1", modify: func(f *EventForm) { f.Name = "" }, wantErr: model.ErrValidation, wantMsg: "Name is required"},
		{name: "missing location", organizerID: "1", modify: func(f *EventForm) { f.Location = " " }, wantErr: model.ErrValidation, wantMsg: "Location is required"},
		{name: "missing description", organizerID: "1", modify: func(f *EventForm) { f.Description = "" }, wantErr: model.ErrValidation, wantMsg: "Description is required"},
		{name: "missing date", organizerID: "1", modify: func(f *EventForm) { f.Date = time.Time{} }, wantErr: model.ErrValidation, wantMsg: "Date is required"},
		{name: "bad status", organizerID: "1", modify: func(f *EventForm) { f.Status = "cancelled" }, wantErr: model.ErrValidation, wantMsg: "Status must be one of"},
		{name: "volunteer as organizer", organizerID: "2", modify: func(f *EventForm) {}, wantErr: model.ErrValidation, wantMsg: "not an organizer"},
		{name: "unknown organizer", organizerID: "99", modify: func(f *EventForm) {}, wantErr: model.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore(t)
			form := validEventForm()
			tt.modify(&form)

			event, err := CreateEvent(store, zap.NewNop(), tt.organizerID, form)

			assert.Nil(t, event)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Len(t, store.ListEvents(), 2)
		})
	}
}
