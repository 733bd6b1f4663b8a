package repository

import (
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

// Create creates a new label
func (r *GormLabelRepository) Create(label *models.Label) error {
	return r.db.Create(label).Error
}

// FindByID finds a label by ID
func (r *GormLabelRepository) FindByID(id uint64) (*models.Label, error) {
	var label models.Label
	if err := r.db.First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// ListByProject lists the labels of a project
func (r *GormLabelRepository) ListByProject(projectID uint64) ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.Where("project_id = ?", projectID).Order("title").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Update updates a label
func (r *GormLabelRepository) Update(label *models.Label) error {
	return r.db.Save(label).Error
}

// Delete deletes a label and prunes its task associations. The tasks
// themselves are untouched.
func (r *GormLabelRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		label := models.Label{ID: id}
		if err := tx.Model(&label).Association("Tasks").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Label{}, id).Error
	})
}

// CountByIDsInProject counts how many of the given label IDs belong to the project
func (r *GormLabelRepository) CountByIDsInProject(labelIDs []uint64, projectID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Label{}).
		Where("project_id = ? AND id IN ?", projectID, labelIDs).
		Count(&count).Error
	return count, err
}
