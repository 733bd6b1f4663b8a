package repository

import (
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// Create creates a new board
func (r *GormBoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// FindByID finds a board by ID with optional preloading
func (r *GormBoardRepository) FindByID(id uint64, preload ...string) (*models.Board, error) {
	var board models.Board
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListByProject lists the boards of a project
func (r *GormBoardRepository) ListByProject(projectID uint64) ([]models.Board, error) {
	var boards []models.Board
	if err := r.db.Where("project_id = ?", projectID).Order("title").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates a board
func (r *GormBoardRepository) Update(board *models.Board) error {
	return r.db.Save(board).Error
}

// Delete deletes a board and its lists and tasks in a transaction
func (r *GormBoardRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteBoardTree(tx, id)
	})
}
