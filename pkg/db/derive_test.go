package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

func TestStaffingRatio(t *testing.T) {
	tests := []struct {
		name         string
		assigned     []string
		required     int
		understaffed bool
	}{
		{"none assigned", nil, 2, true},
		{"partially staffed", []string{"2", "3"}, 4, true},
		{"exactly staffed", []string{"2", "3"}, 2, false},
		{"overstaffed", []string{"2", "3", "4"}, 2, false},
		{"zero required", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StaffingRatio(model.Shift{AssignedVolunteers: tt.assigned, RequiredVolunteers: tt.required})
			assert.Equal(t, len(tt.assigned), s.Assigned)
			assert.Equal(t, tt.required, s.Required)
			assert.Equal(t, tt.understaffed, s.Understaffed)
			assert.Equal(t, s.Assigned < s.Required, s.Understaffed)
		})
	}
}

func TestShiftHours_ClampsMalformedRanges(t *testing.T) {
	assert.InDelta(t, 3.0, ShiftHours(model.Shift{StartTime: at(7), EndTime: at(10)}), 1e-9)
	assert.Equal(t, 0.0, ShiftHours(model.Shift{StartTime: at(10), EndTime: at(7)}))
	assert.Equal(t, 0.0, ShiftHours(model.Shift{StartTime: at(10), EndTime: at(10)}))
}

func TestTotalVolunteerHours(t *testing.T) {
	db := newSeeded(t)

	// shift 1 (3h) + shift 3 (6h)
	assert.InDelta(t, 9.0, db.TotalVolunteerHours("3"), 1e-9)
	// shift 2 (9h) + shift 3 (6h)
	assert.InDelta(t, 15.0, db.TotalVolunteerHours("4"), 1e-9)
	assert.Equal(t, 0.0, db.TotalVolunteerHours("1"))
}

func TestTotalVolunteerHours_MalformedShiftContributesZero(t *testing.T) {
	db := NewDBFromSnapshot(Snapshot{
		Shifts: []model.Shift{
			{ID: "a", StartTime: at(7), EndTime: at(10), AssignedVolunteers: []string{"v"}},
			{ID: "b", StartTime: at(12), EndTime: at(9), AssignedVolunteers: []string{"v"}},
		},
	})

	assert.InDelta(t, 3.0, db.TotalVolunteerHours("v"), 1e-9)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 1, 20, 23, 30, 0, 0, time.UTC)
	b := time.Date(2025, 1, 20, 1, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b, time.UTC))

	tokyo := time.FixedZone("JST", 9*60*60)
	// 23:30 UTC is already the 21st in Tokyo
	assert.False(t, SameDay(a, b, tokyo))
}
