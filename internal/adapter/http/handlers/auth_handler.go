package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "pactle_quotations/internal/adapter/http/dto/request"
	response "pactle_quotations/internal/adapter/http/dto/response"
	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase"
	"pactle_quotations/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
	errMissingToken       = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization token required", http.StatusUnauthorized)
)

// AuthHandler handles account and session endpoints.

type AuthHandler struct {
	auth usecase.IAuthUseCase
}

func NewAuthHandler(auth usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.auth.SignUp(c.Request.Context(), payload.Name, payload.Email, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAuth(user, token))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.auth.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuth(user, token))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var payload request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), payload.Email); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SwitchRole changes the signed-in user's role on the account and the live
// session.
func (h *AuthHandler) SwitchRole(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}

	var payload request.SwitchRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.auth.SwitchRole(c.Request.Context(), token, entities.Role(payload.Role))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) Me(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if header == "" || token == "" || token == header {
		return "", false
	}
	return token, true
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWeakPassword), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session expired or unknown", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
