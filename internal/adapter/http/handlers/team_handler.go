package handlers

import (
	"errors"
	"net/http"

	"salesdash/internal/usecase"
	"salesdash/pkg"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the static team catalog and per-team workload.

type TeamHandler struct {
	usecase usecase.ITeamUseCase
}

func NewTeamHandler(uc usecase.ITeamUseCase) *TeamHandler {
	return &TeamHandler{usecase: uc}
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.usecase.List()})
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.usecase.GetByID(c.Param("id"))
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) GetWorkload(c *gin.Context) {
	workload, err := h.usecase.Workload(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, workload)
}

func mapTeamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
