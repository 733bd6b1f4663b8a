package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/models"
	"github.com/projects-tool/project-management-api/internal/validation"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     testServices
	project *models.Project
	list    *models.List
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.svc = newTestServices(s.db)

	project, err := s.svc.projects.Create(CreateProjectInput{Title: "Task Host"})
	s.Require().NoError(err)
	s.project = project

	board, err := s.svc.boards.Create(CreateBoardInput{ProjectID: project.ID, Title: "Board"})
	s.Require().NoError(err)

	list, err := s.svc.lists.Create(CreateListInput{BoardID: board.ID, Title: "To Do"})
	s.Require().NoError(err)
	s.list = list
}

func (s *TaskServiceTestSuite) createLabel(title string) *models.Label {
	label, err := s.svc.labels.Create(CreateLabelInput{
		ProjectID: s.project.ID,
		Title:     title,
		Color:     "#336699",
	})
	s.Require().NoError(err)
	return label
}

func (s *TaskServiceTestSuite) TestCreateDefaultsPriorityToMedium() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "Default priority"})
	s.Require().NoError(err)
	s.Equal(models.PriorityMedium, task.Priority)
}

func (s *TaskServiceTestSuite) TestCreateWithInvalidPriority() {
	_, err := s.svc.tasks.Create(CreateTaskInput{
		ListID:   s.list.ID,
		Title:    "Bad priority",
		Priority: "URGENT",
	})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeInvalidFormat))
}

func (s *TaskServiceTestSuite) TestStoryPointsMustBeDivisibleByFive() {
	_, err := s.svc.tasks.Create(CreateTaskInput{
		ListID:      s.list.ID,
		Title:       "Seven points",
		StoryPoints: 7,
	})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.Len(violations, 1)
	s.True(violations.Has(validation.CodeNotDivisible))
}

func (s *TaskServiceTestSuite) TestStoryPointsOutOfRangeReportsBothViolations() {
	_, err := s.svc.tasks.Create(CreateTaskInput{
		ListID:      s.list.ID,
		Title:       "Too many points",
		StoryPoints: 103,
	})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeOutOfRange))
	s.True(violations.Has(validation.CodeNotDivisible))
}

func (s *TaskServiceTestSuite) TestValidStoryPoints() {
	for points := 0; points <= 100; points += 5 {
		task, err := s.svc.tasks.Create(CreateTaskInput{
			ListID:      s.list.ID,
			Title:       "Points " + string(rune('A'+points/5)),
			StoryPoints: points,
		})
		s.Require().NoError(err)
		s.Equal(points, task.StoryPoints)
	}
}

func (s *TaskServiceTestSuite) TestCreateWithMissingList() {
	_, err := s.svc.tasks.Create(CreateTaskInput{ListID: 9999, Title: "Orphan"})
	s.Require().Error(err)

	var violations validation.Violations
	s.Require().True(errors.As(err, &violations))
	s.True(violations.Has(validation.CodeInvalidReference))
}

func (s *TaskServiceTestSuite) TestAttachAndDetachLabels() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "Labeled"})
	s.Require().NoError(err)

	bug := s.createLabel("bug")
	feature := s.createLabel("feature")

	labeled, err := s.svc.tasks.AttachLabels(task.TaskNo, []uint64{bug.ID, feature.ID})
	s.Require().NoError(err)
	s.Len(labeled.Labels, 2)

	// Re-attaching is a no-op.
	labeled, err = s.svc.tasks.AttachLabels(task.TaskNo, []uint64{bug.ID})
	s.Require().NoError(err)
	s.Len(labeled.Labels, 2)

	labeled, err = s.svc.tasks.DetachLabels(task.TaskNo, []uint64{bug.ID})
	s.Require().NoError(err)
	s.Len(labeled.Labels, 1)
	s.Equal("feature", labeled.Labels[0].Title)
}

func (s *TaskServiceTestSuite) TestAttachLabelFromAnotherProject() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "Cross project"})
	s.Require().NoError(err)

	other, err := s.svc.projects.Create(CreateProjectInput{Title: "Other Project"})
	s.Require().NoError(err)

	foreign, err := s.svc.labels.Create(CreateLabelInput{
		ProjectID: other.ID,
		Title:     "foreign",
		Color:     "#ABCDEF",
	})
	s.Require().NoError(err)

	_, err = s.svc.tasks.AttachLabels(task.TaskNo, []uint64{foreign.ID})
	s.ErrorIs(err, ErrLabelNotInProject)
}

func (s *TaskServiceTestSuite) TestAttachLabelsRequiresIDs() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "No labels"})
	s.Require().NoError(err)

	_, err = s.svc.tasks.AttachLabels(task.TaskNo, nil)
	s.ErrorIs(err, ErrNoLabelIDsProvided)
}

func (s *TaskServiceTestSuite) TestListFiltersByPriority() {
	for _, priority := range []string{"HI", "HI", "ME", "LO"} {
		_, err := s.svc.tasks.Create(CreateTaskInput{
			ListID:   s.list.ID,
			Title:    "Task " + priority + string(rune('a'+len(priority))),
			Priority: priority,
		})
		s.Require().NoError(err)
	}

	high := models.PriorityHigh
	tasks, total, err := s.svc.tasks.List(ListTasksInput{
		ListID:   s.list.ID,
		Priority: &high,
		Page:     1,
		PageSize: 10,
	})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Len(tasks, 2)
}

func (s *TaskServiceTestSuite) TestListPaginates() {
	for i := 0; i < 5; i++ {
		_, err := s.svc.tasks.Create(CreateTaskInput{
			ListID: s.list.ID,
			Title:  "Task " + string(rune('A'+i)),
		})
		s.Require().NoError(err)
	}

	tasks, total, err := s.svc.tasks.List(ListTasksInput{ListID: s.list.ID, Page: 2, PageSize: 2})
	s.Require().NoError(err)
	s.EqualValues(5, total)
	s.Len(tasks, 2)
}

func (s *TaskServiceTestSuite) TestUpdateMovesTaskBetweenLists() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "Mover"})
	s.Require().NoError(err)

	board, err := s.svc.boards.Create(CreateBoardInput{ProjectID: s.project.ID, Title: "Second Board"})
	s.Require().NoError(err)
	target, err := s.svc.lists.Create(CreateListInput{BoardID: board.ID, Title: "Done"})
	s.Require().NoError(err)

	moved, err := s.svc.tasks.Update(task.TaskNo, UpdateTaskInput{ListID: &target.ID})
	s.Require().NoError(err)
	s.Equal(target.ID, moved.ListID)
}

func (s *TaskServiceTestSuite) TestDeleteRemovesLabelAssociations() {
	task, err := s.svc.tasks.Create(CreateTaskInput{ListID: s.list.ID, Title: "Doomed"})
	s.Require().NoError(err)

	label := s.createLabel("bug")
	_, err = s.svc.tasks.AttachLabels(task.TaskNo, []uint64{label.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.tasks.Delete(task.TaskNo))

	var joins int64
	s.db.Table("task_labels").Count(&joins)
	s.Zero(joins)

	// The label itself survives.
	_, err = s.svc.labels.Get(label.ID)
	s.NoError(err)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
