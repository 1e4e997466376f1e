package handler

import (
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/campuslink/campuslink-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile godoc
// PUT /api/v1/users/me
// Edits the caller's own profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// GetProfile godoc
// GET /api/v1/users/:id
// Returns another member's public profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile": model.Profile{
			ID:             user.ID,
			Name:           user.Name,
			Major:          user.Major,
			GraduationYear: user.GraduationYear,
			AvatarURL:      user.AvatarURL,
		},
	})
}

// MyUniversity godoc
// GET /api/v1/users/me/university
// Returns the caller's campus, or null when the email domain is unmatched.
func (h *UserHandler) MyUniversity(c *gin.Context) {
	claims := middleware.GetClaims(c)

	campus, err := h.userService.University(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"university": campus})
}

// ListUniversities godoc
// GET /api/v1/universities
// Returns all supported campuses, for signup hints.
func (h *UserHandler) ListUniversities(c *gin.Context) {
	campuses, err := h.userService.ListUniversities(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"universities": campuses})
}
