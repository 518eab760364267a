package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesdash/internal/adapter/http/handlers/mocks"
	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"value":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateProjectInput{Title: "Roadmap", Value: 100}).
			Return(entities.Project{ID: "p-1", Title: "Roadmap", Value: 100, Status: entities.ProjectStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"title":"Roadmap","value":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "p-1" || body["title"] != "Roadmap" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidValue)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"title":"Roadmap","value":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects", h.ListProjects)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ID: "p-1", Title: "Roadmap", TeamID: "team-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Projects []map[string]any `json:"projects"`
			Total    int              `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Total != 1 || len(body.Projects) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Projects[0]["teamName"] != "Development Team" {
			t.Fatalf("expected resolved team name, got %v", body.Projects[0]["teamName"])
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects", h.ListProjects)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestProjectHandler_AssignTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assign success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/assign", h.AssignTeam)

		uc.EXPECT().AssignTeam(gomock.Any(), "p-1", "team-2").
			Return(entities.Project{ID: "p-1", TeamID: "team-2", Status: entities.ProjectStatusAssigned}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/assign", bytes.NewBufferString(`{"teamId":"team-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown project maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/assign", h.AssignTeam)

		uc.EXPECT().AssignTeam(gomock.Any(), "missing", "team-2").
			Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/missing/assign", bytes.NewBufferString(`{"teamId":"team-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown team maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/assign", h.AssignTeam)

		uc.EXPECT().AssignTeam(gomock.Any(), "p-1", "team-99").
			Return(entities.Project{}, usecase.ErrTeamNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/assign", bytes.NewBufferString(`{"teamId":"team-99"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing team id in payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/assign", h.AssignTeam)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/assign", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/dashboard", h.Dashboard)

	uc.EXPECT().Dashboard(gomock.Any()).Return(usecase.ProjectDashboard{
		TotalValue:    1500000,
		TotalProjects: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body["formattedTotalValue"] != "€1.5M" {
		t.Fatalf("unexpected formatted value: %v", body["formattedTotalValue"])
	}
}
