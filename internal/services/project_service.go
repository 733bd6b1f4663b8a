package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/constants"
	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/repository"
	"github.com/projects-tool/project-management-api/internal/storage"
	"github.com/projects-tool/project-management-api/internal/utils"
	"github.com/projects-tool/project-management-api/internal/validation"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrImageStoreNotConfigured = errors.New("image storage is not configured")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	images      storage.ImageStore
}

// NewProjectService creates a new ProjectService. The image store may be nil
// when object storage is not configured; image uploads then fail gracefully.
func NewProjectService(projectRepo repository.ProjectRepository, images storage.ImageStore) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		images:      images,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	Slug        string
}

// UpdateProjectInput represents parameters to update a project. Nil fields
// are left unchanged. The slug is deliberately absent: it is derived once at
// creation and never recomputed, even when the title changes.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// Create validates the input and creates a project. When no slug is given it
// is derived from the title. A colliding title or slug is reported as a
// uniqueness violation.
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	violations := validation.Collect(
		validation.Required("title", input.Title),
		validation.MaxLength("title", input.Title, constants.MaxTitleLength),
		validation.MaxLength("description", input.Description, constants.MaxProjectDescriptionLength),
		validation.MaxLength("slug", input.Slug, constants.MaxTitleLength),
	)

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	// A punctuation-only title slugifies to nothing. The slug must never be
	// empty once the project exists, and the NOT NULL column alone cannot
	// enforce that.
	if slug == "" && input.Title != "" {
		violations = append(violations, validation.Violation{
			Field:   "slug",
			Code:    validation.CodeInvalidFormat,
			Message: "cannot be derived from the title, provide one explicitly",
		})
	}

	if violations != nil {
		return nil, violations
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Slug:        slug,
	}

	if err := s.projectRepo.Create(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a project with this title or slug already exists"),
			)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Get returns a project by ID.
func (s *ProjectService) Get(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetBySlug returns a project by its slug.
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// List returns all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Update applies the provided fields to a project. Changing the title does
// not touch the slug.
func (s *ProjectService) Update(projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
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
			validation.MaxLength("description", *input.Description, constants.MaxProjectDescriptionLength),
		)...)
	}
	if violations != nil {
		return nil, violations
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	if err := s.projectRepo.Update(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a project with this title already exists"),
			)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project and everything it owns: boards, lists, tasks and
// labels. The stored image, if any, is removed from object storage.
func (s *ProjectService) Delete(projectID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if project.Image != "" && s.images != nil {
		// Best effort; the database row is already gone.
		_ = s.images.Remove(project.Image)
	}

	return nil
}

// AttachImage stores an uploaded image and records its object key on the
// project, replacing any previous image.
func (s *ProjectService) AttachImage(projectID uint64, file *multipart.FileHeader) (*models.Project, *storage.StoredImage, error) {
	if s.images == nil {
		return nil, nil, ErrImageStoreNotConfigured
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	stored, err := s.images.Save(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store image: %w", err)
	}

	if project.Image != "" {
		_ = s.images.Remove(project.Image)
	}

	project.Image = stored.ObjectName
	if err := s.projectRepo.Update(project); err != nil {
		return nil, nil, fmt.Errorf("failed to update project image: %w", err)
	}

	return project, stored, nil
}
