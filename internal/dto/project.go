package dto

import (
	"time"

	"github.com/projects-tool/project-management-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoardDTO represents a board in API responses
type BoardDTO struct {
	ID        uint64    `json:"id"`
	ProjectID uint64    `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// LabelDTO represents a label in API responses
type LabelDTO struct {
	ID        uint64 `json:"id"`
	ProjectID uint64 `json:"project_id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Slug:        project.Slug,
		Image:       project.Image,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToBoardDTO converts a Board model to BoardDTO
func ToBoardDTO(board models.Board) BoardDTO {
	return BoardDTO{
		ID:        board.ID,
		ProjectID: board.ProjectID,
		Title:     board.Title,
		CreatedAt: board.CreatedAt,
	}
}

// ToBoardDTOs converts a slice of boards
func ToBoardDTOs(boards []models.Board) []BoardDTO {
	dtos := make([]BoardDTO, len(boards))
	for i, board := range boards {
		dtos[i] = ToBoardDTO(board)
	}
	return dtos
}

// ToLabelDTO converts a Label model to LabelDTO
func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:        label.ID,
		ProjectID: label.ProjectID,
		Title:     label.Title,
		Color:     label.Color,
	}
}

// ToLabelDTOs converts a slice of labels
func ToLabelDTOs(labels []models.Label) []LabelDTO {
	dtos := make([]LabelDTO, len(labels))
	for i, label := range labels {
		dtos[i] = ToLabelDTO(label)
	}
	return dtos
}
