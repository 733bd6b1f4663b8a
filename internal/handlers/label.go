package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projects-tool/project-management-api/internal/dto"
	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/services"
)

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	labels *services.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labels *services.LabelService) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// CreateLabelRequest represents the request body for creating a label
type CreateLabelRequest struct {
	ProjectID uint64 `json:"project_id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
}

// UpdateLabelRequest represents the request body for updating a label
type UpdateLabelRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// CreateLabel handles POST /api/labels
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	label, err := h.labels.Create(services.CreateLabelInput{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Color:     req.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"label": dto.ToLabelDTO(*label)})
}

// GetLabel handles GET /api/labels/:id
func (h *LabelHandler) GetLabel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	label, err := h.labels.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"label": dto.ToLabelDTO(*label)})
}

// ListProjectLabels handles GET /api/projects/:id/labels
func (h *LabelHandler) ListProjectLabels(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	labels, err := h.labels.ListByProject(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labels": dto.ToLabelDTOs(labels)})
}

// UpdateLabel handles PATCH /api/labels/:id
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	label, err := h.labels.Update(id, services.UpdateLabelInput{
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"label": dto.ToLabelDTO(*label)})
}

// DeleteLabel handles DELETE /api/labels/:id. Tasks that carried the label
// survive with the label detached.
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.labels.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted successfully"})
}
