package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projects-tool/project-management-api/internal/dto"
	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/services"
)

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	lists *services.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(lists *services.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

// CreateListRequest represents the request body for creating a list
type CreateListRequest struct {
	BoardID  uint64 `json:"board_id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// UpdateListRequest represents the request body for updating a list
type UpdateListRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
	BoardID  *uint64 `json:"board_id"`
}

// CreateList handles POST /api/lists
func (h *ListHandler) CreateList(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	list, err := h.lists.Create(services.CreateListInput{
		BoardID:  req.BoardID,
		Title:    req.Title,
		Position: req.Position,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"list": dto.ToListDTO(*list)})
}

// GetList handles GET /api/lists/:id
func (h *ListHandler) GetList(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.lists.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": dto.ToListDTO(*list)})
}

// ListBoardLists handles GET /api/boards/:id/lists
func (h *ListHandler) ListBoardLists(c *gin.Context) {
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lists, err := h.lists.ListByBoard(boardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lists": dto.ToListDTOs(lists)})
}

// UpdateList handles PATCH /api/lists/:id
func (h *ListHandler) UpdateList(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	list, err := h.lists.Update(id, services.UpdateListInput{
		Title:    req.Title,
		Position: req.Position,
		BoardID:  req.BoardID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": dto.ToListDTO(*list)})
}

// DeleteList handles DELETE /api/lists/:id
func (h *ListHandler) DeleteList(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lists.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}
