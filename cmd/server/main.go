package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projects-tool/project-management-api/internal/config"
	"github.com/projects-tool/project-management-api/internal/database"
	"github.com/projects-tool/project-management-api/internal/handlers"
	"github.com/projects-tool/project-management-api/internal/importer"
	"github.com/projects-tool/project-management-api/internal/logging"
	"github.com/projects-tool/project-management-api/internal/middleware"
	"github.com/projects-tool/project-management-api/internal/repository"
	"github.com/projects-tool/project-management-api/internal/services"
	"github.com/projects-tool/project-management-api/internal/storage"
)

func main() {
	logger := logging.New()
	defer logger.Sync()

	config.LoadEnv(logger)
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg, logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Image uploads are optional: without MINIO_URL the endpoint responds 503.
	var images storage.ImageStore
	if cfg.MinioURL != "" {
		store, err := storage.NewMinioImageStore(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to initialize image storage", zap.Error(err))
		}
		images = store
	} else {
		logger.Warn("MINIO_URL not set, project image uploads are disabled")
	}

	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	projectService := services.NewProjectService(projectRepo, images)
	boardService := services.NewBoardService(boardRepo, projectRepo)
	labelService := services.NewLabelService(labelRepo, projectRepo)
	listService := services.NewListService(listRepo, boardRepo)
	taskService := services.NewTaskService(taskRepo, listRepo, labelRepo)

	registry := importer.NewRegistry(projectService, boardService, listService, taskService, labelService)

	projectHandler := handlers.NewProjectHandler(projectService)
	boardHandler := handlers.NewBoardHandler(boardService)
	labelHandler := handlers.NewLabelHandler(labelService)
	listHandler := handlers.NewListHandler(listService)
	taskHandler := handlers.NewTaskHandler(taskService)
	importHandler := handlers.NewImportHandler(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.FrontendURL))

	r.GET("/hello", handlers.Hello)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Management API is running",
		})
	})

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

	addr := ":" + cfg.ServerPort
	logger.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
