package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestListVolunteers(t *testing.T) {
	tests := []struct {
		name       string
		filter     VolunteerFilter
		wantIDs    []string
		wantShifts []int
	}{
		{name: "no filter", filter: VolunteerFilter{}, wantIDs: []string{"2", "3", "4", "5"}, wantShifts: []int{1, 2, 2, 1}},
		{name: "name search ignores case", filter: VolunteerFilter{Search: "MARIA"}, wantIDs: []string{"3"}, wantShifts: []int{2}},
		{name: "email search", filter: VolunteerFilter{Search: "james.w@"}, wantIDs: []string{"4"}, wantShifts: []int{2}},
		{name: "skill filter", filter: VolunteerFilter{Skill: "Audio/Visual"}, wantIDs: []string{"2", "4"}, wantShifts: []int{1, 2}},
		{name: "skill is exact", filter: VolunteerFilter{Skill: "audio/visual"}, wantIDs: []string{}, wantShifts: []int{}},
		{name: "search and skill", filter: VolunteerFilter{Search: "student", Skill: "Guest Services"}, wantIDs: []string{"3", "5"}, wantShifts: []int{2, 1}},
		{name: "organizers excluded", filter: VolunteerFilter{Search: "sarah"}, wantIDs: []string{}, wantShifts: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := ListVolunteers(newSeededStore(t), zap.NewNop(), tt.filter)

			ids := []string{}
			shifts := []int{}
			for _, v := range dir.Volunteers {
				ids = append(ids, v.User.ID)
				shifts = append(shifts, v.ShiftCount)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantShifts, shifts)
		})
	}
}

func TestListVolunteers_SkillsAreSortedAndUnfiltered(t *testing.T) {
	dir := ListVolunteers(newSeededStore(t), zap.NewNop(), VolunteerFilter{Search: "maria"})

	assert.Equal(t, []string{
		"Audio/Visual",
		"Guest Services",
		"Registration",
		"Security",
		"Setup/Teardown",
		"Social Media",
		"Translation",
	}, dir.Skills)
}
