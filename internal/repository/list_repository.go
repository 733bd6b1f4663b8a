package repository

import (
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
)

// GormListRepository is a GORM implementation of ListRepository
type GormListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new ListRepository
func NewListRepository(db *gorm.DB) ListRepository {
	return &GormListRepository{db: db}
}

// Create creates a new list
func (r *GormListRepository) Create(list *models.List) error {
	return r.db.Create(list).Error
}

// FindByID finds a list by ID with optional preloading
func (r *GormListRepository) FindByID(id uint64, preload ...string) (*models.List, error) {
	var list models.List
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// ListByBoard lists the lists of a board ordered by position
func (r *GormListRepository) ListByBoard(boardID uint64) ([]models.List, error) {
	var lists []models.List
	if err := r.db.Where("board_id = ?", boardID).Order("position").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Update updates a list
func (r *GormListRepository) Update(list *models.List) error {
	return r.db.Save(list).Error
}

// Delete deletes a list and its tasks in a transaction
func (r *GormListRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteListTree(tx, id)
	})
}
