package handler

import (
	"errors"
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/campuslink/campuslink-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ClassHandler handles catalog and enrollment endpoints.
type ClassHandler struct {
	catalogService    *service.CatalogService
	enrollmentService *service.EnrollmentService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(catalogService *service.CatalogService, enrollmentService *service.EnrollmentService) *ClassHandler {
	return &ClassHandler{catalogService: catalogService, enrollmentService: enrollmentService}
}

// Match godoc
// POST /api/v1/classes/match
// Finds or creates the catalog entry (and section) for a course.
func (h *ClassHandler) Match(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.MatchClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.catalogService.MatchClass(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNoUniversity) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoUniversity)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Get godoc
// GET /api/v1/classes/:id
// Returns one catalog entry.
func (h *ClassHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	class, err := h.catalogService.GetClass(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// Enroll godoc
// POST /api/v1/classes/enroll
// Idempotently links the caller to a class for a semester.
func (h *ClassHandler) Enroll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, created, err := h.enrollmentService.Enroll(c.Request.Context(),
		claims.UserID, req.ClassID, req.SectionID, req.Semester, req.TermCode, req.ChatEligible)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // class or section does not exist
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{
		"enrollment": enrollment,
		"created":    created,
	})
}

// MyClasses godoc
// GET /api/v1/classes/mine
// Returns the caller's active enrollments with class and section detail.
func (h *ClassHandler) MyClasses(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classes, err := h.enrollmentService.ListMyClasses(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// Unenroll godoc
// DELETE /api/v1/classes/:id/enrollment
// Soft-disables the caller's enrollment for the given semester (defaults to
// the current one).
func (h *ClassHandler) Unenroll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	err = h.enrollmentService.Unenroll(c.Request.Context(), claims.UserID, classID, c.Query("semester"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
