package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
)

// AnnouncementFeedStore defines the store operations needed for the announcement feed
type AnnouncementFeedStore interface {
	PartitionAnnouncements(audience model.Audience) (urgent, other []model.Announcement)
}

// AnnouncementFeed is what an audience sees, urgent first
type AnnouncementFeed struct {
	Urgent []model.Announcement
	Other  []model.Announcement
	Total  int
	Today  int
}

// VolunteerAnnouncements partitions the announcements visible to audience and counts how
// many were posted on now's calendar day in loc
func VolunteerAnnouncements(
	store AnnouncementFeedStore,
	logger *zap.Logger,
	audience model.Audience,
	now time.Time,
	loc *time.Location,
) *AnnouncementFeed {
	if loc == nil {
		loc = time.UTC
	}

	urgent, other := store.PartitionAnnouncements(audience)
	feed := &AnnouncementFeed{
		Urgent: urgent,
		Other:  other,
		Total:  len(urgent) + len(other),
	}

	for _, group := range [][]model.Announcement{urgent, other} {
		for _, a := range group {
			if db.SameDay(a.Timestamp, now, loc) {
				feed.Today++
			}
		}
	}

	logger.Debug("Computed announcement feed",
		zap.String("audience", string(audience)),
		zap.Int("urgent", len(urgent)),
		zap.Int("total", feed.Total))

	return feed
}

// OrganizerFeedStore defines the store operations needed for the organizer announcement feed
type OrganizerFeedStore interface {
	ListAnnouncements() []model.Announcement
	ListUsersByRole(role model.Role) []model.User
}

// OrganizerFeed is every announcement in the store plus how many users each audience reaches
type OrganizerFeed struct {
	AnnouncementFeed
	Recipients map[model.Audience]int
}

// OrganizerAnnouncements lists all announcements regardless of audience, urgent first
func OrganizerAnnouncements(
	store OrganizerFeedStore,
	logger *zap.Logger,
	now time.Time,
	loc *time.Location,
) *OrganizerFeed {
	if loc == nil {
		loc = time.UTC
	}

	feed := &OrganizerFeed{}
	for _, a := range store.ListAnnouncements() {
		if a.Priority == model.AnnouncementUrgent {
			feed.Urgent = append(feed.Urgent, a)
		} else {
			feed.Other = append(feed.Other, a)
		}
		if db.SameDay(a.Timestamp, now, loc) {
			feed.Today++
		}
	}
	feed.Total = len(feed.Urgent) + len(feed.Other)

	volunteers := len(store.ListUsersByRole(model.RoleVolunteer))
	organizers := len(store.ListUsersByRole(model.RoleOrganizer))
	feed.Recipients = map[model.Audience]int{
		model.AudienceAll:        volunteers + organizers,
		model.AudienceVolunteers: volunteers,
		model.AudienceOrganizers: organizers,
	}

	logger.Debug("Computed organizer announcement feed",
		zap.Int("urgent", len(feed.Urgent)),
		zap.Int("total", feed.Total))

	return feed
}
