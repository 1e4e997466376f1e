package handler

import (
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClassmateHandler handles the derived classmate queries.
type ClassmateHandler struct {
	classmateService *service.ClassmateService
}

// NewClassmateHandler creates a new ClassmateHandler.
func NewClassmateHandler(classmateService *service.ClassmateService) *ClassmateHandler {
	return &ClassmateHandler{classmateService: classmateService}
}

// ByClass godoc
// GET /api/v1/classes/:id/classmates?semester=...&professor=...
// Returns the other members of one class. An optional professor filter
// narrows to that professor's section.
func (h *ClassmateHandler) ByClass(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	classmates, err := h.classmateService.ListByClass(c.Request.Context(),
		claims.UserID, classID, c.Query("semester"), c.Query("professor"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classmates": classmates})
}

// All godoc
// GET /api/v1/classmates?semester=...
// Returns every user sharing at least one class with the caller, with the
// shared classes grouped per user.
func (h *ClassmateHandler) All(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classmates, err := h.classmateService.All(c.Request.Context(), claims.UserID, c.Query("semester"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classmates": classmates})
}
