package services

import (
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// VolunteerTaskStore defines the store operations needed for a volunteer's task list
type VolunteerTaskStore interface {
	ListVolunteerTasks(volunteerID string) []model.Task
}

// VolunteerTaskList groups a volunteer's tasks. HighPriority is the subset of Pending
// with high priority.
type VolunteerTaskList struct {
	Pending      []model.Task
	Completed    []model.Task
	HighPriority []model.Task
}

// VolunteerTasks splits a volunteer's tasks into pending and completed and picks out the high priority ones
func VolunteerTasks(store VolunteerTaskStore, logger *zap.Logger, volunteerID string) *VolunteerTaskList {
	tasks := store.ListVolunteerTasks(volunteerID)

	list := &VolunteerTaskList{
		Pending: filterTasks(tasks, func(t model.Task) bool {
			return t.Status != model.TaskCompleted
		}),
		Completed: filterTasks(tasks, func(t model.Task) bool {
			return t.Status == model.TaskCompleted
		}),
	}
	list.HighPriority = filterTasks(list.Pending, func(t model.Task) bool {
		return t.Priority == model.PriorityHigh
	})

	logger.Debug("Computed volunteer tasks",
		zap.String("volunteer_id", volunteerID),
		zap.Int("pending", len(list.Pending)),
		zap.Int("completed", len(list.Completed)))

	return list
}
