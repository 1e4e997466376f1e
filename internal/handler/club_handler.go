package handler

import (
	"errors"
	"net/http"
	"strconv"

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

// ClubHandler handles student organization endpoints.
type ClubHandler struct {
	clubService *service.ClubService
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List godoc
// GET /api/v1/clubs
// Returns the clubs of the caller's campus.
func (h *ClubHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clubs, err := h.clubService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNoUniversity) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoUniversity)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clubs": clubs})
}

// Mine godoc
// GET /api/v1/clubs/mine
// Returns the clubs the caller belongs to.
func (h *ClubHandler) Mine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clubs, err := h.clubService.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clubs": clubs})
}

// Create godoc
// POST /api/v1/clubs
// Founds a club with the caller as its first member.
func (h *ClubHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateClubRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	club, err := h.clubService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNoUniversity) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoUniversity)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"club": club})
}

// Join godoc
// POST /api/v1/clubs/:id/join
func (h *ClubHandler) Join(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.clubService.Join(c.Request.Context(), clubID, claims.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Leave godoc
// POST /api/v1/clubs/:id/leave
func (h *ClubHandler) Leave(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.clubService.Leave(c.Request.Context(), clubID, claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Post godoc
// POST /api/v1/clubs/:id/posts
// Publishes to a club feed. Members only.
func (h *ClubHandler) Post(c *gin.Context) {
	claims := middleware.GetClaims(c)

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateClubPostRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.clubService.Post(c.Request.Context(), clubID, claims.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotClubMember) {
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

// Feed godoc
// GET /api/v1/clubs/:id/posts?page=N
// Returns one page of a club's feed, newest first.
func (h *ClubHandler) Feed(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	posts, total, err := h.clubService.Feed(c.Request.Context(), clubID, page)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	perPage := 20
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"posts": posts}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}
