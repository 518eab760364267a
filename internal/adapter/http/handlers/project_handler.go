package handlers

import (
	"errors"
	"net/http"

	request "salesdash/internal/adapter/http/dto/request"
	response "salesdash/internal/adapter/http/dto/response"
	"salesdash/internal/usecase"
	"salesdash/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for the locally authored projects
// domain.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), usecase.CreateProjectInput{
		Title:          payload.Title,
		Value:          payload.Value,
		Description:    payload.Description,
		Tag:            payload.Tag,
		EstimatedHours: payload.EstimatedHours,
		AttachedFile:   payload.AttachedFile,
		Icon:           payload.Icon,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) AssignTeam(c *gin.Context) {
	var payload request.AssignTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.AssignTeam(c.Request.Context(), c.Param("id"), payload.ResolveTeamID())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) Dashboard(c *gin.Context) {
	dash, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectDashboard(dash))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidValue),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
