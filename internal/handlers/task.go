package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projects-tool/project-management-api/internal/dto"
	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/services"
	"github.com/projects-tool/project-management-api/internal/utils"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	ListID      uint64 `json:"list_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	StoryPoints int    `json:"story_points"`
}

// UpdateTaskRequest represents the request body for updating a task
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	StoryPoints *int    `json:"story_points"`
	ListID      *uint64 `json:"list_id"`
}

// TaskLabelsRequest represents the request body for attaching or detaching
// labels
type TaskLabelsRequest struct {
	LabelIDs []uint64 `json:"label_ids"`
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.Create(services.CreateTaskInput{
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		StoryPoints: req.StoryPoints,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": dto.ToTaskDTO(*task)})
}

// GetTask handles GET /api/tasks/:taskNo
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskNo, ok := parseIDParam(c, "taskNo")
	if !ok {
		return
	}

	task, err := h.tasks.Get(taskNo)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// ListListTasks handles GET /api/lists/:id/tasks with pagination and an
// optional priority filter.
func (h *TaskHandler) ListListTasks(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{
		ListID:   listID,
		Page:     params.Page,
		PageSize: params.Limit,
	}
	if raw := c.Query("priority"); raw != "" {
		priority := models.TaskPriority(raw)
		input.Priority = &priority
	}

	tasks, total, err := h.tasks.List(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// UpdateTask handles PATCH /api/tasks/:taskNo
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskNo, ok := parseIDParam(c, "taskNo")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.Update(taskNo, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		StoryPoints: req.StoryPoints,
		ListID:      req.ListID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// DeleteTask handles DELETE /api/tasks/:taskNo
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskNo, ok := parseIDParam(c, "taskNo")
	if !ok {
		return
	}

	if err := h.tasks.Delete(taskNo); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// AttachLabels handles POST /api/tasks/:taskNo/label
func (h *TaskHandler) AttachLabels(c *gin.Context) {
	taskNo, ok := parseIDParam(c, "taskNo")
	if !ok {
		return
	}

	var req TaskLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.AttachLabels(taskNo, req.LabelIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// DetachLabels handles POST /api/tasks/:taskNo/unlabel
func (h *TaskHandler) DetachLabels(c *gin.Context) {
	taskNo, ok := parseIDParam(c, "taskNo")
	if !ok {
		return
	}

	var req TaskLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.DetachLabels(taskNo, req.LabelIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}
