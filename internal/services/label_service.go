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

var ErrLabelNotFound = errors.New("label not found")

// LabelService provides business logic for label operations.
type LabelService struct {
	labelRepo   repository.LabelRepository
	projectRepo repository.ProjectRepository
}

// NewLabelService creates a new LabelService.
func NewLabelService(labelRepo repository.LabelRepository, projectRepo repository.ProjectRepository) *LabelService {
	return &LabelService{
		labelRepo:   labelRepo,
		projectRepo: projectRepo,
	}
}

// CreateLabelInput represents parameters to create a new label.
type CreateLabelInput struct {
	ProjectID uint64
	Title     string
	Color     string
}

// UpdateLabelInput represents parameters to update a label. Nil fields are
// left unchanged.
type UpdateLabelInput struct {
	Title *string
	Color *string
}

// Create validates the input, verifies the owning project exists and creates
// the label. The color must be a '#'-prefixed six digit hex code and the
// title unique within the project.
func (s *LabelService) Create(input CreateLabelInput) (*models.Label, error) {
	violations := validation.Collect(
		validation.Required("title", input.Title),
		validation.MaxLength("title", input.Title, constants.MaxLabelTitleLength),
		validation.HexColor("color", input.Color),
	)

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			violations = append(violations, *validation.MissingReference("project_id"))
		} else {
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
	}

	if violations != nil {
		return nil, violations
	}

	label := &models.Label{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Color:     input.Color,
	}

	if err := s.labelRepo.Create(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a label with this title already exists in the project"),
			)
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	return label, nil
}

// Get returns a label by ID.
func (s *LabelService) Get(labelID uint64) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}
	return label, nil
}

// ListByProject returns the labels of a project.
func (s *LabelService) ListByProject(projectID uint64) ([]models.Label, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	labels, err := s.labelRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// Update applies the provided fields to a label.
func (s *LabelService) Update(labelID uint64, input UpdateLabelInput) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}

	var violations validation.Violations
	if input.Title != nil {
		violations = append(violations, validation.Collect(
			validation.Required("title", *input.Title),
			validation.MaxLength("title", *input.Title, constants.MaxLabelTitleLength),
		)...)
	}
	if input.Color != nil {
		violations = append(violations, validation.Collect(
			validation.HexColor("color", *input.Color),
		)...)
	}
	if violations != nil {
		return nil, violations
	}

	if input.Title != nil {
		label.Title = *input.Title
	}
	if input.Color != nil {
		label.Color = *input.Color
	}

	if err := s.labelRepo.Update(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a label with this title already exists in the project"),
			)
		}
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	return label, nil
}

// Delete removes a label. Tasks that carried the label survive; only the
// associations are pruned.
func (s *LabelService) Delete(labelID uint64) error {
	if _, err := s.labelRepo.FindByID(labelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLabelNotFound
		}
		return fmt.Errorf("failed to find label: %w", err)
	}

	if err := s.labelRepo.Delete(labelID); err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	return nil
}
