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

var ErrBoardNotFound = errors.New("board not found")

// BoardService provides business logic for board operations.
type BoardService struct {
	boardRepo   repository.BoardRepository
	projectRepo repository.ProjectRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boardRepo repository.BoardRepository, projectRepo repository.ProjectRepository) *BoardService {
	return &BoardService{
		boardRepo:   boardRepo,
		projectRepo: projectRepo,
	}
}

// CreateBoardInput represents parameters to create a new board.
type CreateBoardInput struct {
	ProjectID uint64
	Title     string
}

// UpdateBoardInput represents parameters to update a board. Nil fields are
// left unchanged.
type UpdateBoardInput struct {
	Title     *string
	ProjectID *uint64
}

// Create validates the input, verifies the owning project exists and creates
// the board. The title must be unique within the project.
func (s *BoardService) Create(input CreateBoardInput) (*models.Board, error) {
	violations := validation.Collect(
		validation.Required("title", input.Title),
		validation.MaxLength("title", input.Title, constants.MaxTitleLength),
	)

	if violation, err := s.checkProjectExists(input.ProjectID); err != nil {
		return nil, err
	} else if violation != nil {
		violations = append(violations, *violation)
	}

	if violations != nil {
		return nil, violations
	}

	board := &models.Board{
		ProjectID: input.ProjectID,
		Title:     input.Title,
	}

	if err := s.boardRepo.Create(board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a board with this title already exists in the project"),
			)
		}
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// Get returns a board by ID.
func (s *BoardService) Get(boardID uint64) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return board, nil
}

// ListByProject returns the boards of a project.
func (s *BoardService) ListByProject(projectID uint64) ([]models.Board, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	boards, err := s.boardRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// Update applies the provided fields to a board. Moving the board to another
// project requires that project to exist.
func (s *BoardService) Update(boardID uint64, input UpdateBoardInput) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	var violations validation.Violations
	if input.Title != nil {
		violations = append(violations, validation.Collect(
			validation.Required("title", *input.Title),
			validation.MaxLength("title", *input.Title, constants.MaxTitleLength),
		)...)
	}
	if input.ProjectID != nil {
		if violation, err := s.checkProjectExists(*input.ProjectID); err != nil {
			return nil, err
		} else if violation != nil {
			violations = append(violations, *violation)
		}
	}
	if violations != nil {
		return nil, violations
	}

	if input.Title != nil {
		board.Title = *input.Title
	}
	if input.ProjectID != nil {
		board.ProjectID = *input.ProjectID
	}

	if err := s.boardRepo.Update(board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a board with this title already exists in the project"),
			)
		}
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// Delete removes a board and cascades to its lists and tasks.
func (s *BoardService) Delete(boardID uint64) error {
	if _, err := s.boardRepo.FindByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBoardNotFound
		}
		return fmt.Errorf("failed to find board: %w", err)
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

func (s *BoardService) checkProjectExists(projectID uint64) (*validation.Violation, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validation.MissingReference("project_id"), nil
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	return nil, nil
}
