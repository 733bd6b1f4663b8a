package dto

import (
	"time"

	"github.com/projects-tool/project-management-api/internal/models"
)

// ListDTO represents a list in API responses
type ListDTO struct {
	ID       uint64 `json:"id"`
	BoardID  uint64 `json:"board_id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	TaskNo      uint64              `json:"task_no"`
	ListID      uint64              `json:"list_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
	StoryPoints int                 `json:"story_points"`
	Labels      []LabelDTO          `json:"labels,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToListDTO converts a List model to ListDTO
func ToListDTO(list models.List) ListDTO {
	return ListDTO{
		ID:       list.ID,
		BoardID:  list.BoardID,
		Title:    list.Title,
		Position: list.Position,
	}
}

// ToListDTOs converts a slice of lists
func ToListDTOs(lists []models.List) []ListDTO {
	dtos := make([]ListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = ToListDTO(list)
	}
	return dtos
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		TaskNo:      task.TaskNo,
		ListID:      task.ListID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		StoryPoints: task.StoryPoints,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include labels if preloaded
	if len(task.Labels) > 0 {
		dto.Labels = ToLabelDTOs(task.Labels)
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
