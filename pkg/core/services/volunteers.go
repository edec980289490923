package services

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// VolunteerDirectoryStore defines the store operations needed for the volunteer directory
type VolunteerDirectoryStore interface {
	ListUsersByRole(role model.Role) []model.User
	ListVolunteerShifts(volunteerID string) []model.Shift
}

// VolunteerFilter narrows the directory. Empty fields match everything.
type VolunteerFilter struct {
	// Search matches a case-insensitive substring of the name or email
	Search string
	// Skill must be listed by the volunteer exactly
	Skill string
}

type VolunteerListing struct {
	User       model.User
	ShiftCount int
}

// VolunteerDirectory holds the matching volunteers and every skill known across all
// volunteers, sorted, for building a filter
type VolunteerDirectory struct {
	Volunteers []VolunteerListing
	Skills     []string
}

// ListVolunteers returns the volunteers matching filter with their shift counts
func ListVolunteers(store VolunteerDirectoryStore, logger *zap.Logger, filter VolunteerFilter) *VolunteerDirectory {
	volunteers := store.ListUsersByRole(model.RoleVolunteer)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	dir := &VolunteerDirectory{}
	for _, v := range volunteers {
		for _, skill := range v.Skills {
			if !slices.Contains(dir.Skills, skill) {
				dir.Skills = append(dir.Skills, skill)
			}
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Email), search) {
			continue
		}
		if filter.Skill != "" && !v.HasSkill(filter.Skill) {
			continue
		}

		dir.Volunteers = append(dir.Volunteers, VolunteerListing{
			User:       v,
			ShiftCount: len(store.ListVolunteerShifts(v.ID)),
		})
	}
	slices.Sort(dir.Skills)

	logger.Debug("Listed volunteers",
		zap.String("search", filter.Search),
		zap.String("skill", filter.Skill),
		zap.Int("matches", len(dir.Volunteers)))

	return dir
}
