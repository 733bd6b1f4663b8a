package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
	listID float64
}

func (s *TaskHandlerTestSuite) SetupTest() {
	s.router, s.db = setupRouter(s.T())

	project := s.create("/api/projects", gin.H{"title": "Task Host"})["project"].(map[string]interface{})
	board := s.create("/api/boards", gin.H{
		"project_id": project["id"],
		"title":      "Board",
	})["board"].(map[string]interface{})
	list := s.create("/api/lists", gin.H{
		"board_id": board["id"],
		"title":    "To Do",
	})["list"].(map[string]interface{})

	s.listID = list["id"].(float64)
}

func (s *TaskHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TaskHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *TaskHandlerTestSuite) create(path string, body gin.H) map[string]interface{} {
	w := s.request(http.MethodPost, path, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return s.decode(w)
}

func (s *TaskHandlerTestSuite) TestCreateTaskDefaultsPriority() {
	task := s.create("/api/tasks", gin.H{
		"list_id": s.listID,
		"title":   "Default priority",
	})["task"].(map[string]interface{})

	s.Equal("ME", task["priority"])
}

func (s *TaskHandlerTestSuite) TestCreateTaskReportsEveryViolation() {
	w := s.request(http.MethodPost, "/api/tasks", gin.H{
		"list_id":      s.listID,
		"title":        "Bad points",
		"story_points": 103,
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	body := s.decode(w)
	s.Equal("VALIDATION_FAILED", body["code"])

	details := body["details"].([]interface{})
	codes := make(map[string]bool)
	for _, detail := range details {
		codes[detail.(map[string]interface{})["code"].(string)] = true
	}
	s.True(codes["OUT_OF_RANGE"])
	s.True(codes["NOT_DIVISIBLE"])
}

func (s *TaskHandlerTestSuite) TestListTasksPaginates() {
	titles := []string{"One", "Two", "Three"}
	for _, title := range titles {
		s.create("/api/tasks", gin.H{"list_id": s.listID, "title": title})
	}

	w := s.request(http.MethodGet, "/api/lists/"+jsonNumber(s.listID)+"/tasks?page=1&limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	tasks := body["tasks"].([]interface{})
	s.Len(tasks, 2)

	pagination := body["pagination"].(map[string]interface{})
	s.EqualValues(3, pagination["total"])
	s.EqualValues(1, pagination["page"])
}

func (s *TaskHandlerTestSuite) TestAttachAndDetachLabels() {
	project := s.create("/api/projects", gin.H{"title": "Label Owner"})["project"].(map[string]interface{})
	board := s.create("/api/boards", gin.H{"project_id": project["id"], "title": "B"})["board"].(map[string]interface{})
	list := s.create("/api/lists", gin.H{"board_id": board["id"], "title": "L"})["list"].(map[string]interface{})
	task := s.create("/api/tasks", gin.H{"list_id": list["id"], "title": "Labeled"})["task"].(map[string]interface{})
	label := s.create("/api/labels", gin.H{
		"project_id": project["id"],
		"title":      "bug",
		"color":      "#FF0000",
	})["label"].(map[string]interface{})

	taskNo := jsonNumber(task["task_no"].(float64))

	w := s.request(http.MethodPost, "/api/tasks/"+taskNo+"/label", gin.H{
		"label_ids": []interface{}{label["id"]},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	labeled := s.decode(w)["task"].(map[string]interface{})
	s.Len(labeled["labels"].([]interface{}), 1)

	w = s.request(http.MethodPost, "/api/tasks/"+taskNo+"/unlabel", gin.H{
		"label_ids": []interface{}{label["id"]},
	})
	s.Require().Equal(http.StatusOK, w.Code)

	unlabeled := s.decode(w)["task"].(map[string]interface{})
	s.Nil(unlabeled["labels"])
}

func (s *TaskHandlerTestSuite) TestAttachLabelsWithoutIDs() {
	task := s.create("/api/tasks", gin.H{"list_id": s.listID, "title": "No labels"})["task"].(map[string]interface{})

	w := s.request(http.MethodPost, "/api/tasks/"+jsonNumber(task["task_no"].(float64))+"/label", gin.H{
		"label_ids": []interface{}{},
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
