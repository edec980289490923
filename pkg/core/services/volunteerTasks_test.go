package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// mockTaskStore implements VolunteerTaskStore
type mockTaskStore struct {
	tasks []model.Task
}

func (m *mockTaskStore) ListVolunteerTasks(string) []model.Task { return m.tasks }

func TestVolunteerTasks_Groups(t *testing.T) {
	store := &mockTaskStore{tasks: []model.Task{
		{ID: "a", Status: model.TaskAssigned, Priority: model.PriorityHigh},
		{ID: "b", Status: model.TaskInProgress, Priority: model.PriorityLow},
		{ID: "c", Status: model.TaskCompleted, Priority: model.PriorityHigh},
		{ID: "d", Status: model.TaskInProgress, Priority: model.PriorityHigh},
	}}

	list := VolunteerTasks(store, zap.NewNop(), "v")

	require.Len(t, list.Pending, 3)
	assert.Equal(t, []string{"a", "b", "d"}, taskIDs(list.Pending))
	assert.Equal(t, []string{"c"}, taskIDs(list.Completed))
	assert.Equal(t, []string{"a", "d"}, taskIDs(list.HighPriority))
}

func TestVolunteerTasks_Seeded(t *testing.T) {
	list := VolunteerTasks(newSeededStore(t), zap.NewNop(), "4")

	assert.Equal(t, []string{"3"}, taskIDs(list.Pending))
	assert.Empty(t, list.Completed)
	assert.Equal(t, []string{"3"}, taskIDs(list.HighPriority))
}

func TestVolunteerTasks_NoTasks(t *testing.T) {
	list := VolunteerTasks(newSeededStore(t), zap.NewNop(), "5")

	assert.Empty(t, list.Pending)
	assert.Empty(t, list.Completed)
	assert.Empty(t, list.HighPriority)
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
