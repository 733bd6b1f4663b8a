package repository

import (
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by its task number with optional preloading
func (r *GormTaskRepository) FindByID(taskNo uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&task, taskNo).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks of a list with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("list_id = ?", filter.ListID)
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("task_no")
	if filter.Limit > 0 {
		listQuery = listQuery.Offset(filter.Offset).Limit(filter.Limit)
	}

	if err := listQuery.Preload("Labels").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task and its label associations
func (r *GormTaskRepository) Delete(taskNo uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		task := models.Task{TaskNo: taskNo}
		if err := tx.Model(&task).Association("Labels").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, taskNo).Error
	})
}

// AttachLabels associates labels with a task. Already attached labels are
// kept, so the operation is idempotent.
func (r *GormTaskRepository) AttachLabels(taskNo uint64, labelIDs []uint64) error {
	labels := make([]models.Label, len(labelIDs))
	for i, id := range labelIDs {
		labels[i] = models.Label{ID: id}
	}

	task := models.Task{TaskNo: taskNo}
	return r.db.Model(&task).Association("Labels").Append(&labels)
}

// DetachLabels removes label associations from a task
func (r *GormTaskRepository) DetachLabels(taskNo uint64, labelIDs []uint64) error {
	labels := make([]models.Label, len(labelIDs))
	for i, id := range labelIDs {
		labels[i] = models.Label{ID: id}
	}

	task := models.Task{TaskNo: taskNo}
	return r.db.Model(&task).Association("Labels").Delete(&labels)
}

// ProjectID resolves the project a task belongs to via its list and board
func (r *GormTaskRepository) ProjectID(taskNo uint64) (uint64, error) {
	var projectID uint64
	err := r.db.Model(&models.Task{}).
		Select("boards.project_id").
		Joins("JOIN lists ON lists.id = tasks.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("tasks.task_no = ?", taskNo).
		Scan(&projectID).Error
	return projectID, err
}
