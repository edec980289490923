package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// CreateAnnouncementStore defines the store operations needed for posting announcements
type CreateAnnouncementStore interface {
	GetEvent(id string) (model.Event, bool)
	CreateAnnouncement(a model.Announcement) (model.Announcement, error)
}

// AnnouncementForm is the announcement form as submitted by an organizer
type AnnouncementForm struct {
	EventID        string                     `validate:"required"`
	Title          string                     `validate:"required"`
	Message        string                     `validate:"required"`
	Priority       model.AnnouncementPriority `validate:"omitempty,oneof=info warning urgent"`
	TargetAudience model.Audience             `validate:"omitempty,oneof=all volunteers organizers"`
}

// CreateAnnouncement validates the form and posts it against an existing event.
// Priority defaults to info and audience to all. The store stamps the timestamp.
func CreateAnnouncement(store CreateAnnouncementStore, logger *zap.Logger, form AnnouncementForm) (*model.Announcement, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Message = strings.TrimSpace(form.Message)

	if err := validateForm(form); err != nil {
		return nil, err
	}

	if _, ok := store.GetEvent(form.EventID); !ok {
		return nil, invalid("event %s does not exist", form.EventID)
	}

	priority := form.Priority
	if priority == "" {
		priority = model.AnnouncementInfo
	}
	audience := form.TargetAudience
	if audience == "" {
		audience = model.AudienceAll
	}

	announcement, err := store.CreateAnnouncement(model.Announcement{
		EventID:        form.EventID,
		Title:          form.Title,
		Message:        form.Message,
		Priority:       priority,
		TargetAudience: audience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	logger.Info("Announcement posted",
		zap.String("announcement_id", announcement.ID),
		zap.String("priority", string(announcement.Priority)),
		zap.String("audience", string(announcement.TargetAudience)))
	return &announcement, nil
}
