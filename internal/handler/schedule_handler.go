package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/campuslink/campuslink-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles the schedule onboarding endpoints: file import,
// photo import, manual entry and confirmation.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	mediaService    *service.MediaService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, mediaService *service.MediaService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, mediaService: mediaService}
}

// ImportFile godoc
// POST /api/v1/schedule/import
// Parses an uploaded .ics or .csv schedule into a confirmation preview.
func (h *ScheduleHandler) ImportFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	preview, err := h.scheduleService.ImportFile(header.Filename, content)
	if err != nil {
		h.failImport(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preview": preview})
}

// ImportPhoto godoc
// POST /api/v1/schedule/photo
// Stores an uploaded schedule photo, runs text recognition and structures
// the result into a confirmation preview.
func (h *ScheduleHandler) ImportPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	path, err := h.mediaService.SaveSchedulePhoto(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	preview, err := h.scheduleService.ImportPhoto(c.Request.Context(), path)
	if err != nil {
		h.failImport(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preview": preview})
}

// PreviewManual godoc
// POST /api/v1/schedule/manual
// Wraps hand-entered courses in the standard confirmation preview.
func (h *ScheduleHandler) PreviewManual(c *gin.Context) {
	var req model.ConfirmScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	preview, err := h.scheduleService.PreviewManual(req.Courses)
	if err != nil {
		h.failImport(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preview": preview})
}

// Confirm godoc
// POST /api/v1/schedule/confirm
// Resolves the previewed courses against the catalog, enrolls the caller
// and completes onboarding.
func (h *ScheduleHandler) Confirm(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.ConfirmScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.scheduleService.Confirm(c.Request.Context(), claims.UserID, &req)
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

func (h *ScheduleHandler) failImport(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFile):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrScheduleEmpty):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrScheduleEmpty)
	case errors.Is(err, service.ErrOCRUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrOCRUnavailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
