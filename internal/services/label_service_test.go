package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/validation"
)

type LabelServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     testServices
	project *models.Project
}

func (s *LabelServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.svc = newTestServices(s.db)

	project, err := s.svc.projects.Create(CreateProjectInput{Title: "Label Host"})
	s.Require().NoError(err)
	s.project = project
}

func (s *LabelServiceTestSuite) TestCreateLabel() {
	label, err := s.svc.labels.Create(CreateLabelInput{
		ProjectID: s.project.ID,
		Title:     "bug",
		Color:     "#FF0000",
	})
	s.Require().NoError(err)
	s.Equal("#FF0000", label.Color)
}

func (s *LabelServiceTestSuite) TestInvalidColorFails() {
	for _, color := range []string{"", "FF0000", "#FFF", "#GGHHII", "#FF00001", "red"} {
		_, err := s.svc.labels.Create(CreateLabelInput{
			ProjectID: s.project.ID,
			Title:     "label-" + color,
			Color:     color,
		})
		s.Require().Error(err, "color %q should be rejected", color)

		var violations validation.Violations
		s.Require().True(errors.As(err, &violations))
		s.True(violations.Has(validation.CodeInvalidFormat))
	}
}

func (s *LabelServiceTestSuite) TestDuplicateTitleWithinProjectFails() {
	_, err := s.svc.labels.Create(CreateLabelInput{ProjectID: s.project.ID, Title: "bug", Color: "#FF0000"})
	s.Require().NoError(err)

	_, err = s.svc.labels.Create(CreateLabelInput{ProjectID: s.project.ID, Title: "bug", Color: "#00FF00"})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeAlreadyExists))
}

func (s *LabelServiceTestSuite) TestDeleteDetachesButKeepsTasks() {
	board, err := s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Board"})
	s.Require().NoError(err)
	list, err := s.svc.lists.Create(CreateListInput{BoardID: board.ID, Title: "List"})
	s.Require().NoError(err)
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: list.ID, Title: "Task"})
	s.Require().NoError(err)

	label, err := s.svc.labels.Create(CreateLabelInput{ProjectID: s.project.ID, Title: "bug", Color: "#FF0000"})
	s.Require().NoError(err)

	_, err = s.svc.tasks.AttachLabels(task.TaskNo, []uint64{label.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.labels.Delete(label.ID))

	survivor, err := s.svc.tasks.Get(task.TaskNo)
	s.Require().NoError(err)
	s.Empty(survivor.Labels)

	var joins int64
	s.db.Table("task_labels").Count(&joins)
	s.Zero(joins)
}

func TestLabelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LabelServiceTestSuite))
}
