package auth

import (
	"errors"
	"net/http"
	"strconv"

	"lionscars-service/internal/domain/user"
	"lionscars-service/internal/middleware"
	xerrors "lionscars-service/internal/pkg/errors"
	"lionscars-service/internal/pkg/response"
	service "lionscars-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a console user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many login attempts", nil)
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	jti, _ := middleware.GetJTI(c)
	if err := h.authService.Logout(c.Request.Context(), userID, jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}

// ListUsers returns all console accounts (admin only).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser registers a console account (admin only).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	u, err := h.authService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrDuplicateEntry):
			response.Error(c, http.StatusConflict, "username already taken", err)
		case errors.Is(err, xerrors.ErrValidation):
			response.Error(c, http.StatusBadRequest, "invalid request", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create user", err)
		}
		return
	}
	c.JSON(http.StatusCreated, u)
}

// DeleteUser removes a console account (admin only).
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user ID", err)
		return
	}
	if err := h.authService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	response.Success(c, http.StatusOK, "user deleted", nil)
}
