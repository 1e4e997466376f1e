package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// enrollmentsCacheTTL bounds staleness of the cached schedule view; writes
// invalidate eagerly, the TTL is a backstop.
const enrollmentsCacheTTL = 10 * time.Minute

// ChatProvisionPayload is the queue message consumed by the chat worker.
type ChatProvisionPayload struct {
	UserID    string `json:"user_id"`
	ClassID   string `json:"class_id"`
	SectionID string `json:"section_id,omitempty"`
	Title     string `json:"title"`
}

// EnrollmentService links users to classes for a term.
type EnrollmentService struct {
	rdb         *redis.Client
	enrollments *repository.EnrollmentRepository
	classes     *repository.ClassRepository
	log         zerolog.Logger

	// now is swappable for term-bucket tests.
	now func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(rdb *redis.Client, enrollments *repository.EnrollmentRepository, classes *repository.ClassRepository) *EnrollmentService {
	return &EnrollmentService{
		rdb:         rdb,
		enrollments: enrollments,
		classes:     classes,
		log:         log.With().Str("component", "enrollment_service").Logger(),
		now:         time.Now,
	}
}

// CurrentSemester buckets a date into the term containing it.
// Spring covers January through May, Summer June through August,
// Fall September through December.
func CurrentSemester(t time.Time) string {
	var season string
	switch m := t.Month(); {
	case m <= time.May:
		season = "Spring"
	case m <= time.August:
		season = "Summer"
	default:
		season = "Fall"
	}
	return fmt.Sprintf("%s %d", season, t.Year())
}

// CurrentTermCode is the compact registrar-style form of CurrentSemester,
// e.g. "2026SP", "2026SU", "2026FA".
func CurrentTermCode(t time.Time) string {
	var code string
	switch m := t.Month(); {
	case m <= time.May:
		code = "SP"
	case m <= time.August:
		code = "SU"
	default:
		code = "FA"
	}
	return fmt.Sprintf("%d%s", t.Year(), code)
}

// Enroll idempotently links the user to a class for a semester. When an
// enrollment already exists for (user, class, semester) it is returned
// unchanged: a differing sectionID in the request does not rebind the row.
// chatEligible marks the class for asynchronous chat provisioning.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, classID uuid.UUID, sectionID *uuid.UUID, semester, termCode string, chatEligible bool) (*model.Enrollment, bool, error) {
	if semester == "" {
		semester = CurrentSemester(s.now())
	}
	if termCode == "" {
		termCode = CurrentTermCode(s.now())
	}

	existing, err := s.enrollments.Find(ctx, userID, classID, semester)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("find enrollment: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	enrollment := &model.Enrollment{
		UserID:    userID,
		ClassID:   classID,
		SectionID: sectionID,
		Semester:  semester,
		TermCode:  termCode,
		IsActive:  true,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, false, fmt.Errorf("create enrollment: %w", err)
	}

	s.invalidateCaches(ctx, userID, classID)

	if chatEligible {
		if err := s.queueChatProvision(ctx, enrollment); err != nil {
			// Enrollment already committed; chat provisioning will catch up on
			// the next import, so log instead of failing the request.
			s.log.Error().Err(err).
				Str("class_id", classID.String()).
				Msg("Failed to queue chat provisioning")
		}
	}
	return enrollment, true, nil
}

// Unenroll soft-disables an active enrollment. The row survives for history.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, classID uuid.UUID, semester string) error {
	if semester == "" {
		semester = CurrentSemester(s.now())
	}
	enrollment, err := s.enrollments.Find(ctx, userID, classID, semester)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("find enrollment: %w", err)
	}
	if err := s.enrollments.SetActive(ctx, enrollment.ID, false); err != nil {
		return fmt.Errorf("deactivate enrollment: %w", err)
	}
	s.invalidateCaches(ctx, userID, classID)
	return nil
}

// ListMyClasses returns the user's active enrollments with class and section
// detail, read through a short-lived Redis cache.
func (s *EnrollmentService) ListMyClasses(ctx context.Context, userID uuid.UUID) ([]model.EnrolledClass, error) {
	cacheKey := config.CacheKey.UserEnrollmentsKey(userID.String())
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var result []model.EnrolledClass
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	result, err := s.enrollments.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, data, enrollmentsCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Failed to cache enrollments")
		}
	}
	return result, nil
}

func (s *EnrollmentService) queueChatProvision(ctx context.Context, e *model.Enrollment) error {
	class, err := s.classes.GetByID(ctx, e.ClassID)
	if err != nil {
		return fmt.Errorf("load class: %w", err)
	}
	title := class.ClassCode
	if class.ClassName != "" {
		title = fmt.Sprintf("%s - %s", class.ClassCode, class.ClassName)
	}

	payload := ChatProvisionPayload{
		UserID:  e.UserID.String(),
		ClassID: e.ClassID.String(),
		Title:   title,
	}
	if e.SectionID != nil {
		payload.SectionID = e.SectionID.String()
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, config.WorkerKey.ChatProvisionQueue, data).Err()
}

func (s *EnrollmentService) invalidateCaches(ctx context.Context, userID, classID uuid.UUID) {
	uid := userID.String()
	cid := classID.String()
	keys := []string{
		config.CacheKey.UserEnrollmentsKey(uid),
		config.CacheKey.AllClassmatesKey(uid),
		config.CacheKey.ClassmatesKey(uid, cid),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to invalidate enrollment caches")
	}
	if err := s.rdb.Incr(ctx, config.CacheKey.ClassRosterVersionKey(cid)).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to bump roster version")
	}
	// Other members' aggregated lists refresh lazily via the worker.
	data, _ := json.Marshal(map[string]string{"class_id": cid})
	if err := s.rdb.RPush(ctx, config.WorkerKey.ClassmateRefreshQueue, data).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to queue classmate refresh")
	}
}
