package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projects-tool/project-management-api/internal/dto"
	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/services"
)

// BoardHandler handles board-related HTTP requests
type BoardHandler struct {
	boards *services.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boards *services.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// CreateBoardRequest represents the request body for creating a board
type CreateBoardRequest struct {
	ProjectID uint64 `json:"project_id"`
	Title     string `json:"title"`
}

// UpdateBoardRequest represents the request body for updating a board
type UpdateBoardRequest struct {
	Title     *string `json:"title"`
	ProjectID *uint64 `json:"project_id"`
}

// CreateBoard handles POST /api/boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boards.Create(services.CreateBoardInput{
		ProjectID: req.ProjectID,
		Title:     req.Title,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"board": dto.ToBoardDTO(*board)})
}

// GetBoard handles GET /api/boards/:id
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": dto.ToBoardDTO(*board)})
}

// ListProjectBoards handles GET /api/projects/:id/boards
func (h *BoardHandler) ListProjectBoards(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	boards, err := h.boards.ListByProject(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"boards": dto.ToBoardDTOs(boards)})
}

// UpdateBoard handles PATCH /api/boards/:id
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boards.Update(id, services.UpdateBoardInput{
		Title:     req.Title,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": dto.ToBoardDTO(*board)})
}

// DeleteBoard handles DELETE /api/boards/:id
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.boards.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
