package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/validation"
)

type BoardServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     testServices
	project *models.Project
}

func (s *BoardServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.svc = newTestServices(s.db)

	project, err := s.svc.projects.Create(CreateProjectInput{Title: "Board Host"})
	s.Require().NoError(err)
	s.project = project
}

func (s *BoardServiceTestSuite) TestCreateBoard() {
	board, err := s.svc.boards.Create(CreateBoardInput{
		ProjectID: s.project.ID,
		Title:     "Sprint 1",
	})
	s.Require().NoError(err)
	s.Equal(s.project.ID, board.ProjectID)
	s.NotZero(board.ID)
}

func (s *BoardServiceTestSuite) TestDuplicateTitleWithinProjectFails() {
	_, err := s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Sprint 1"})
	s.Require().NoError(err)

	_, err = s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Sprint 1"})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeAlreadyExists))
}

func (s *BoardServiceTestSuite) TestSameTitleAcrossProjectsSucceeds() {
	other, err := s.svc.projects.Create(CreateProjectInput{Title: "Other Project"})
	s.Require().NoError(err)

	_, err = s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Backlog"})
	s.Require().NoError(err)

	_, err = s.svc.boards.Create(CreateBoardInput{ProjectID: other.ID, Title: "Backlog"})
	s.NoError(err)
}

func (s *BoardServiceTestSuite) TestCreateWithMissingProject() {
	_, err := s.svc.boards.Create(CreateBoardInput{ProjectID: 9999, Title: "Orphan"})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeInvalidReference))
}

func (s *BoardServiceTestSuite) TestMoveToMissingProjectFails() {
	board, err := s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Movable"})
	s.Require().NoError(err)

	missing := uint64(9999)
	_, err = s.svc.boards.Update(board.ID, UpdateBoardInput{ProjectID: &missing})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeInvalidReference))
}

func (s *BoardServiceTestSuite) TestDeleteCascadesListsAndTasks() {
	board, err := s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Doomed"})
	s.Require().NoError(err)

	list, err := s.svc.lists.Create(CreateListInput{BoardID: board.ID, Title: "To Do"})
	s.Require().NoError(err)

	_, err = s.svc.tasks.Create(CreateTaskInput{ListID: list.ID, Title: "Gone soon"})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.boards.Delete(board.ID))

	var lists, tasks int64
	s.db.Model(&models.List{}).Count(&lists)
	s.db.Model(&models.Task{}).Count(&tasks)
	s.Zero(lists)
	s.Zero(tasks)

	_, err = s.svc.boards.Get(board.ID)
	s.ErrorIs(err, ErrBoardNotFound)
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
