package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

func TestOrganizerDashboard_Seeded(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := OrganizerDashboard(newSeededStore(t), zap.NewNop(), now, 5)

	assert.Equal(t, 1, stats.ActiveEvents)
	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 4, stats.Volunteers)
	assert.Equal(t, 3, stats.OpenShifts)
	assert.Equal(t, 3, stats.TotalShifts)
	assert.Equal(t, 1, stats.CheckedIn)

	require.Len(t, stats.Upcoming, 2)
	assert.Equal(t, "1", stats.Upcoming[0].Shift.ID)
	assert.Equal(t, "2", stats.Upcoming[1].Shift.ID)
	assert.Equal(t, "Annual Tech Conference 2025", stats.Upcoming[0].EventName)
	assert.Equal(t, model.Staffing{Assigned: 2, Required: 4, Understaffed: true}, stats.Upcoming[0].Staffing)
}

// mockDashboardStore implements DashboardStore
type mockDashboardStore struct {
	shifts []model.Shift
}

func (m *mockDashboardStore) ListEvents() []model.Event { return nil }
func (m *mockDashboardStore) ListUsersByRole(model.Role) []model.User { return nil }
func (m *mockDashboardStore) ListShifts() []model.Shift { return m.shifts }
func (m *mockDashboardStore) CountAttendanceByStatus(model.AttendanceStatus) int { return 0 }

func TestOrganizerDashboard_UpcomingSortedAndLimited(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(day int) time.Time { return time.Date(2025, 1, day, 9, 0, 0, 0, time.UTC) }

	store := &mockDashboardStore{shifts: []model.Shift{
		{ID: "late", StartTime: at(9), Status: model.ShiftFull},
		{ID: "past", StartTime: at(1), Status: model.ShiftOpen},
		{ID: "soon", StartTime: at(2), Status: model.ShiftOpen},
		{ID: "tie-a", StartTime: at(5), Status: model.ShiftOpen},
		{ID: "tie-b", StartTime: at(5), Status: model.ShiftCompleted},
	}}

	stats := OrganizerDashboard(store, zap.NewNop(), now, 3)

	assert.Equal(t, 3, stats.OpenShifts)
	require.Len(t, stats.Upcoming, 3)
	assert.Equal(t, "soon", stats.Upcoming[0].Shift.ID)
	assert.Equal(t, "tie-a", stats.Upcoming[1].Shift.ID)
	assert.Equal(t, "tie-b", stats.Upcoming[2].Shift.ID)
}

func TestOrganizerDashboard_NothingUpcoming(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	stats := OrganizerDashboard(newSeededStore(t), zap.NewNop(), now, 5)

	assert.Empty(t, stats.Upcoming)
	assert.Equal(t, 3, stats.TotalShifts)
}
