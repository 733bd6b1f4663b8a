package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/repository"
)

// setupTestDB opens an in-memory sqlite database with the same error
// translation the production connection uses.
func setupTestDB(t *testing.T) *gorm.DB {
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
	// A second pooled connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Board{},
		&models.Label{},
		&models.List{},
		&models.Task{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// testServices wires every service against one test database.
type testServices struct {
	projects *ProjectService
	boards   *BoardService
	labels   *LabelService
	lists    *ListService
	tasks    *TaskService
}

func newTestServices(db *gorm.DB) testServices {
	projectRepo := repository.NewProjectRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return testServices{
		projects: NewProjectService(projectRepo, nil),
		boards:   NewBoardService(boardRepo, projectRepo),
		labels:   NewLabelService(labelRepo, projectRepo),
		lists:    NewListService(listRepo, boardRepo),
		tasks:    NewTaskService(taskRepo, listRepo, labelRepo),
	}
}
