package handlers

import (
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projects-tool/project-management-api/internal/importer"
	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/repository"
	"github.com/projects-tool/project-management-api/internal/services"
)

// jsonNumber renders a decoded JSON number as a path segment.
func jsonNumber(v float64) string {
	return strconv.FormatUint(uint64(v), 10)
}

// setupRouter builds the full API against an in-memory database.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Board{},
		&models.Label{},
		&models.List{},
		&models.Task{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	projectRepo := repository.NewProjectRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	projectService := services.NewProjectService(projectRepo, nil)
	boardService := services.NewBoardService(boardRepo, projectRepo)
	labelService := services.NewLabelService(labelRepo, projectRepo)
	listService := services.NewListService(listRepo, boardRepo)
	taskService := services.NewTaskService(taskRepo, listRepo, labelRepo)

	registry := importer.NewRegistry(projectService, boardService, listService, taskService, labelService)

	projectHandler := NewProjectHandler(projectService)
	boardHandler := NewBoardHandler(boardService)
	labelHandler := NewLabelHandler(labelService)
	listHandler := NewListHandler(listService)
	taskHandler := NewTaskHandler(taskService)
	importHandler := NewImportHandler(registry)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/image", projectHandler.UploadImage)
			projects.GET("/:id/boards", boardHandler.ListProjectBoards)
			projects.GET("/:id/labels", labelHandler.ListProjectLabels)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PATCH("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.GET("/:id/lists", listHandler.ListBoardLists)
		}

		labels := api.Group("/labels")
		{
			labels.POST("", labelHandler.CreateLabel)
			labels.GET("/:id", labelHandler.GetLabel)
			labels.PATCH("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
		}

		lists := api.Group("/lists")
		{
			lists.POST("", listHandler.CreateList)
			lists.GET("/:id", listHandler.GetList)
			lists.PATCH("/:id", listHandler.UpdateList)
			lists.DELETE("/:id", listHandler.DeleteList)
			lists.GET("/:id/tasks", taskHandler.ListListTasks)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:taskNo", taskHandler.GetTask)
			tasks.PATCH("/:taskNo", taskHandler.UpdateTask)
			tasks.DELETE("/:taskNo", taskHandler.DeleteTask)
			tasks.POST("/:taskNo/label", taskHandler.AttachLabels)
			tasks.POST("/:taskNo/unlabel", taskHandler.DetachLabels)
		}

		api.GET("/import", importHandler.ListEntities)
		api.POST("/import/:entity", importHandler.Import)
	}

	return r, db
}
