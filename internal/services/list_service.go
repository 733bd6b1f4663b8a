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

var ErrListNotFound = errors.New("list not found")

// ListService provides business logic for list operations.
type ListService struct {
	listRepo  repository.ListRepository
	boardRepo repository.BoardRepository
}

// NewListService creates a new ListService.
func NewListService(listRepo repository.ListRepository, boardRepo repository.BoardRepository) *ListService {
	return &ListService{
		listRepo:  listRepo,
		boardRepo: boardRepo,
	}
}

// CreateListInput represents parameters to create a new list.
type CreateListInput struct {
	BoardID  uint64
	Title    string
	Position int
}

// UpdateListInput represents parameters to update a list. Nil fields are
// left unchanged.
type UpdateListInput struct {
	Title    *string
	Position *int
	BoardID  *uint64
}

// Create validates the input, verifies the owning board exists and creates
// the list. The title must be unique within the board and the position
// non-negative.
func (s *ListService) Create(input CreateListInput) (*models.List, error) {
	violations := validation.Collect(
		validation.Required("title", input.Title),
		validation.MaxLength("title", input.Title, constants.MaxTitleLength),
		validation.NonNegative("position", input.Position),
	)

	if _, err := s.boardRepo.FindByID(input.BoardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			violations = append(violations, *validation.MissingReference("board_id"))
		} else {
			return nil, fmt.Errorf("failed to verify board: %w", err)
		}
	}

	if violations != nil {
		return nil, violations
	}

	list := &models.List{
		BoardID:  input.BoardID,
		Title:    input.Title,
		Position: input.Position,
	}

	if err := s.listRepo.Create(list); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a list with this title already exists on the board"),
			)
		}
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

// Get returns a list by ID.
func (s *ListService) Get(listID uint64) (*models.List, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}
	return list, nil
}

// ListByBoard returns the lists of a board ordered by position.
func (s *ListService) ListByBoard(boardID uint64) ([]models.List, error) {
	if _, err := s.boardRepo.FindByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	lists, err := s.listRepo.ListByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// Update applies the provided fields to a list. Moving the list to another
// board requires that board to exist.
func (s *ListService) Update(listID uint64, input UpdateListInput) (*models.List, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}

	var violations validation.Violations
	if input.Title != nil {
		violations = append(violations, validation.Collect(
			validation.Required("title", *input.Title),
			validation.MaxLength("title", *input.Title, constants.MaxTitleLength),
		)...)
	}
	if input.Position != nil {
		violations = append(violations, validation.Collect(
			validation.NonNegative("position", *input.Position),
		)...)
	}
	if input.BoardID != nil {
		if _, err := s.boardRepo.FindByID(*input.BoardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				violations = append(violations, *validation.MissingReference("board_id"))
			} else {
				return nil, fmt.Errorf("failed to verify board: %w", err)
			}
		}
	}
	if violations != nil {
		return nil, violations
	}

	if input.Title != nil {
		list.Title = *input.Title
	}
	if input.Position != nil {
		list.Position = *input.Position
	}
	if input.BoardID != nil {
		list.BoardID = *input.BoardID
	}

	if err := s.listRepo.Update(list); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validation.Collect(
				validation.Duplicate("title", "a list with this title already exists on the board"),
			)
		}
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return list, nil
}

// Delete removes a list and cascades to its tasks.
func (s *ListService) Delete(listID uint64) error {
	if _, err := s.listRepo.FindByID(listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to find list: %w", err)
	}

	if err := s.listRepo.Delete(listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}
