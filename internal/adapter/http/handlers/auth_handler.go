package handlers

import (
	"errors"
	"net/http"

	request "salesdash/internal/adapter/http/dto/request"
	"salesdash/internal/infrastructure/salesapi"
	"salesdash/internal/usecase"
	"salesdash/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler drives the login exchange with the remote auth endpoint.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.usecase.Logout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, salesapi.ErrAuthRequired):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Email and password are required", http.StatusBadRequest)
	case errors.Is(err, salesapi.ErrLoginFailed), errors.Is(err, salesapi.ErrEmptyToken):
		return pkg.NewDomainErrorSimple("LOGIN_FAILED", "Login was rejected", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
