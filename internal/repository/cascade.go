package repository

import (
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
)

// The cascade helpers implement the ownership lifecycle inside a single
// transaction: Project -> Boards -> Lists -> Tasks, plus Project -> Labels.
// Task-label rows are association rows, pruned whenever either side goes.

func deleteListTree(tx *gorm.DB, listID uint64) error {
	var tasks []models.Task
	if err := tx.Where("list_id = ?", listID).Find(&tasks).Error; err != nil {
		return err
	}

	for i := range tasks {
		if err := tx.Model(&tasks[i]).Association("Labels").Clear(); err != nil {
			return err
		}
	}

	if err := tx.Where("list_id = ?", listID).Delete(&models.Task{}).Error; err != nil {
		return err
	}

	return tx.Delete(&models.List{}, listID).Error
}

func deleteBoardTree(tx *gorm.DB, boardID uint64) error {
	var lists []models.List
	if err := tx.Where("board_id = ?", boardID).Find(&lists).Error; err != nil {
		return err
	}

	for _, list := range lists {
		if err := deleteListTree(tx, list.ID); err != nil {
			return err
		}
	}

	return tx.Delete(&models.Board{}, boardID).Error
}

func deleteProjectTree(tx *gorm.DB, projectID uint64) error {
	var boards []models.Board
	if err := tx.Where("project_id = ?", projectID).Find(&boards).Error; err != nil {
		return err
	}

	for _, board := range boards {
		if err := deleteBoardTree(tx, board.ID); err != nil {
			return err
		}
	}

	var labels []models.Label
	if err := tx.Where("project_id = ?", projectID).Find(&labels).Error; err != nil {
		return err
	}

	for i := range labels {
		if err := tx.Model(&labels[i]).Association("Tasks").Clear(); err != nil {
			return err
		}
	}

	if err := tx.Where("project_id = ?", projectID).Delete(&models.Label{}).Error; err != nil {
		return err
	}

	return tx.Delete(&models.Project{}, projectID).Error
}
