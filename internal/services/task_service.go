package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/constants"
	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/repository"
	"github.com/projects-tool/project-management-api/internal/validation"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoLabelIDsProvided = errors.New("at least one label ID is required")
	ErrLabelNotInProject  = errors.New("one or more labels do not exist or belong to a different project")
)

// TaskService provides business logic for task operations.
type TaskService struct {
	taskRepo  repository.TaskRepository
	listRepo  repository.ListRepository
	labelRepo repository.LabelRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, listRepo repository.ListRepository, labelRepo repository.LabelRepository) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		listRepo:  listRepo,
		labelRepo: labelRepo,
	}
}

// CreateTaskInput represents parameters to create a new task. Priority
// defaults to medium when empty.
type CreateTaskInput struct {
	ListID      uint64
	Title       string
	Description string
	Priority    string
	StoryPoints int
}

// UpdateTaskInput represents parameters to update a task. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	StoryPoints *int
	ListID      *uint64
}

// ListTasksInput represents filters for listing the tasks of a list.
type ListTasksInput struct {
	ListID   uint64
	Priority *models.TaskPriority
	Page     int
	PageSize int
}

// Create validates the input, verifies the owning list exists and creates
// the task. Every violated rule is reported, so out-of-range story points
// that also fail the divisibility check yield two violations.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Priority == "" {
		input.Priority = string(models.PriorityMedium)
	}

	violations := validation.Collect(
		validation.Required("title", input.Title),
		validation.MaxLength("title", input.Title, constants.MaxTitleLength),
		validation.MaxLength("description", input.Description, constants.MaxTaskDescriptionLength),
		validation.OneOf("priority", input.Priority, models.Priorities()...),
		validation.IntRange("story_points", input.StoryPoints, constants.MinStoryPoints, constants.MaxStoryPoints),
		validation.DivisibleBy("story_points", input.StoryPoints, constants.StoryPointsStep),
	)

	if _, err := s.listRepo.FindByID(input.ListID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			violations = append(violations, *validation.MissingReference("list_id"))
		} else {
			return nil, fmt.Errorf("failed to verify list: %w", err)
		}
	}

	if violations != nil {
		return nil, violations
	}

	task := &models.Task{
		ListID:      input.ListID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    models.TaskPriority(input.Priority),
		StoryPoints: input.StoryPoints,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get returns a task with its labels.
func (s *TaskService) Get(taskNo uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskNo, "Labels")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// List returns the tasks of a list with their labels.
func (s *TaskService) List(input ListTasksInput) ([]models.Task, int64, error) {
	if _, err := s.listRepo.FindByID(input.ListID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrListNotFound
		}
		return nil, 0, fmt.Errorf("failed to find list: %w", err)
	}

	filter := repository.TaskFilter{
		ListID:   input.ListID,
		Priority: input.Priority,
	}
	if input.Page > 0 && input.PageSize > 0 {
		filter.Offset = (input.Page - 1) * input.PageSize
		filter.Limit = input.PageSize
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// Update applies the provided fields to a task. Moving the task to another
// list requires that list to exist.
func (s *TaskService) Update(taskNo uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	var violations validation.Violations
	if input.Title != nil {
		violations = append(violations, validation.Collect(
			validation.Required("title", *input.Title),
			validation.MaxLength("title", *input.Title, constants.MaxTitleLength),
		)...)
	}
	if input.Description != nil {
		violations = append(violations, validation.Collect(
			validation.MaxLength("description", *input.Description, constants.MaxTaskDescriptionLength),
		)...)
	}
	if input.Priority != nil {
		violations = append(violations, validation.Collect(
			validation.OneOf("priority", *input.Priority, models.Priorities()...),
		)...)
	}
	if input.StoryPoints != nil {
		violations = append(violations, validation.Collect(
			validation.IntRange("story_points", *input.StoryPoints, constants.MinStoryPoints, constants.MaxStoryPoints),
			validation.DivisibleBy("story_points", *input.StoryPoints, constants.StoryPointsStep),
		)...)
	}
	if input.ListID != nil {
		if _, err := s.listRepo.FindByID(*input.ListID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				violations = append(violations, *validation.MissingReference("list_id"))
			} else {
				return nil, fmt.Errorf("failed to verify list: %w", err)
			}
		}
	}
	if violations != nil {
		return nil, violations
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = models.TaskPriority(*input.Priority)
	}
	if input.StoryPoints != nil {
		task.StoryPoints = *input.StoryPoints
	}
	if input.ListID != nil {
		task.ListID = *input.ListID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.TaskNo, "Labels")
}

// Delete removes a task and its label associations.
func (s *TaskService) Delete(taskNo uint64) error {
	if _, err := s.taskRepo.FindByID(taskNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskNo); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// AttachLabels associates labels with a task. Every label must exist and
// belong to the task's project. Attaching an already attached label is a
// no-op.
func (s *TaskService) AttachLabels(taskNo uint64, labelIDs []uint64) (*models.Task, error) {
	if len(labelIDs) == 0 {
		return nil, ErrNoLabelIDsProvided
	}

	if _, err := s.taskRepo.FindByID(taskNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	ids := uniqueUint64(labelIDs)

	projectID, err := s.taskRepo.ProjectID(taskNo)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}

	count, err := s.labelRepo.CountByIDsInProject(ids, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify labels: %w", err)
	}
	if int(count) != len(ids) {
		return nil, ErrLabelNotInProject
	}

	if err := s.taskRepo.AttachLabels(taskNo, ids); err != nil {
		return nil, fmt.Errorf("failed to attach labels: %w", err)
	}

	return s.taskRepo.FindByID(taskNo, "Labels")
}

// DetachLabels removes label associations from a task.
func (s *TaskService) DetachLabels(taskNo uint64, labelIDs []uint64) (*models.Task, error) {
	if len(labelIDs) == 0 {
		return nil, ErrNoLabelIDsProvided
	}

	if _, err := s.taskRepo.FindByID(taskNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.DetachLabels(taskNo, uniqueUint64(labelIDs)); err != nil {
		return nil, fmt.Errorf("failed to detach labels: %w", err)
	}

	return s.taskRepo.FindByID(taskNo, "Labels")
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
