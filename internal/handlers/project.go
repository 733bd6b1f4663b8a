package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projects-tool/project-management-api/internal/dto"
	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/services"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// UpdateProjectRequest represents the request body for updating a project
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.Create(services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": dto.ToProjectDTO(*project)})
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// GetProject handles GET /api/projects/:id. A non-numeric identifier is
// treated as a slug lookup.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	param := c.Param("id")

	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		project, err := h.projects.Get(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
		return
	}

	project, err := h.projects.GetBySlug(param)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}

// UpdateProject handles PATCH /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.Update(id, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projects.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// UploadImage handles POST /api/projects/:id/image
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		apierrors.BadRequest(c, "Image file is required")
		return
	}

	project, stored, err := h.projects.AttachImage(id, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": dto.ToProjectDTO(*project),
		"image":   stored,
	})
}
