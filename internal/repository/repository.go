package repository

import (
	"github.com/projects-tool/project-management-api/internal/models"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindBySlug finds a project by its slug
	FindBySlug(slug string) (*models.Project, error)

	// List retrieves all projects
	List() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and cascades to its boards, lists, tasks and labels
	Delete(id uint64) error
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(board *models.Board) error
	FindByID(id uint64, preload ...string) (*models.Board, error)

	// ListByProject lists the boards of a project
	ListByProject(projectID uint64) ([]models.Board, error)

	Update(board *models.Board) error

	// Delete deletes a board and cascades to its lists and tasks
	Delete(id uint64) error
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	Create(label *models.Label) error
	FindByID(id uint64) (*models.Label, error)

	// ListByProject lists the labels of a project
	ListByProject(projectID uint64) ([]models.Label, error)

	Update(label *models.Label) error

	// Delete deletes a label, pruning its task associations. Tasks survive.
	Delete(id uint64) error

	// CountByIDsInProject counts how many of the given label IDs belong to the project
	CountByIDsInProject(labelIDs []uint64, projectID uint64) (int64, error)
}

// ListRepository defines the interface for list data access
type ListRepository interface {
	Create(list *models.List) error
	FindByID(id uint64, preload ...string) (*models.List, error)

	// ListByBoard lists the lists of a board ordered by position
	ListByBoard(boardID uint64) ([]models.List, error)

	Update(list *models.List) error

	// Delete deletes a list and cascades to its tasks
	Delete(id uint64) error
}

// TaskFilter holds filtering and pagination options for listing tasks
type TaskFilter struct {
	ListID   uint64
	Priority *models.TaskPriority
	Offset   int
	Limit    int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	// FindByID finds a task by its task number with optional preloading
	FindByID(taskNo uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks of a list with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	Update(task *models.Task) error

	// Delete deletes a task and its label associations
	Delete(taskNo uint64) error

	// AttachLabels associates labels with a task; existing associations are kept
	AttachLabels(taskNo uint64, labelIDs []uint64) error

	// DetachLabels removes label associations from a task
	DetachLabels(taskNo uint64, labelIDs []uint64) error

	// ProjectID resolves the project a task belongs to via its list and board
	ProjectID(taskNo uint64) (uint64, error)
}
