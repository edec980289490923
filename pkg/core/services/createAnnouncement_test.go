package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
)

func TestCreateAnnouncement_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store, err := db.NewSeededDB(db.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	a, err := CreateAnnouncement(store, zap.NewNop(), AnnouncementForm{
		EventID: "2",
		Title:   " Parking ",
		Message: "Use lot B",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Parking", a.Title)
	assert.Equal(t, model.AnnouncementInfo, a.Priority)
	assert.Equal(t, model.AudienceAll, a.TargetAudience)
	assert.True(t, a.Timestamp.Equal(now))

	urgent, other := store.PartitionAnnouncements(model.AudienceOrganizers)
	assert.Empty(t, urgent)
	require.Len(t, other, 2)
	assert.Equal(t, a.ID, other[1].ID)
}

func TestCreateAnnouncement_UrgentForVolunteers(t *testing.T) {
	store := newSeededStore(t)

	a, err := CreateAnnouncement(store, zap.NewNop(), AnnouncementForm{
		EventID:        "1",
		Title:          "Storm warning",
		Message:        "Setup moved indoors",
		Priority:       model.AnnouncementUrgent,
		TargetAudience: model.AudienceVolunteers,
	})
	require.NoError(t, err)

	urgent, _ := store.PartitionAnnouncements(model.AudienceVolunteers)
	require.Len(t, urgent, 2)
	assert.Equal(t, a.ID, urgent[1].ID)
}

func TestCreateAnnouncement_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		form    AnnouncementForm
		wantMsg string
	}{
		{name: "missing title", form: AnnouncementForm{EventID: "1", Message: "m"}, wantMsg: "Title is required"},
		{name: "missing message", form: AnnouncementForm{EventID: "1", Title: "t"}, wantMsg: "Message is required"},
		{name: "missing event", form: AnnouncementForm{Title: "t", Message: "m"}, wantMsg: "EventID is required"},
		{name: "unknown event", form: AnnouncementForm{EventID: "42", Title: "t", Message: "m"}, wantMsg: "event 42 does not exist"},
		{name: "bad priority", form: AnnouncementForm{EventID: "1", Title: "t", Message: "m", Priority: "critical"}, wantMsg: "Priority must be one of"},
		{name: "bad audience", form: AnnouncementForm{EventID: "1", Title: "t", Message: "m", TargetAudience: "staff"}, wantMsg: "TargetAudience must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore(t)

			a, err := CreateAnnouncement(store, zap.NewNop(), tt.form)

			assert.Nil(t, a)
			require.ErrorIs(t, err, model.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Len(t, store.ListAnnouncements(), 3)
		})
	}
}
