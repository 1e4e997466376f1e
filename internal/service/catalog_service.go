package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/schedule"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// departmentByPrefix maps a class code's leading letter-prefix to a display
// department. Unrecognized prefixes pass through as the raw prefix.
var departmentByPrefix = map[string]string{
	"CS":   "Computer Science",
	"MATH": "Mathematics",
	"PHYS": "Physics",
	"CHEM": "Chemistry",
	"BIOL": "Biology",
	"ENGL": "English",
	"HIST": "History",
	"PSYC": "Psychology",
	"ECON": "Economics",
	"PHIL": "Philosophy",
	"SOC":  "Sociology",
	"POLS": "Political Science",
	"ART":  "Art",
	"MUS":  "Music",
	"BUS":  "Business",
	"ACCT": "Accounting",
	"NURS": "Nursing",
	"EE":   "Electrical Engineering",
	"ME":   "Mechanical Engineering",
	"CE":   "Civil Engineering",
	"STAT": "Statistics",
	"SPAN": "Spanish",
	"FREN": "French",
	"COMM": "Communications",
}

// MatchResult is the outcome of resolving one course against the catalog.
type MatchResult struct {
	ClassID   uuid.UUID    `json:"class_id"`
	SectionID *uuid.UUID   `json:"section_id,omitempty"`
	Class     *model.Class `json:"class"`
}

// CatalogService resolves parsed courses against the shared class catalog.
type CatalogService struct {
	rdb      *redis.Client
	users    *repository.UserRepository
	classes  *repository.ClassRepository
	sections *repository.SectionRepository
	log      zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(rdb *redis.Client, users *repository.UserRepository, classes *repository.ClassRepository, sections *repository.SectionRepository) *CatalogService {
	return &CatalogService{
		rdb:      rdb,
		users:    users,
		classes:  classes,
		sections: sections,
		log:      log.With().Str("component", "catalog_service").Logger(),
	}
}

// MatchClass finds or creates the catalog row for a course, then finds or
// creates its section when any section-identifying field is present.
//
// The find-then-insert on a brand-new code is not serialized: two concurrent
// calls can both miss and both insert, leaving duplicate catalog rows. The
// catalog carries no unique constraint on (university_id, class_code) so the
// second insert succeeds rather than erroring; dedup is an offline concern.
func (s *CatalogService) MatchClass(ctx context.Context, userID uuid.UUID, req *model.MatchClassRequest) (*MatchResult, error) {
	universityID, err := s.users.UniversityIDOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	normalized := schedule.NormalizeClassCode(req.ClassCode)
	class, err := s.classes.FindByCode(ctx, universityID, req.ClassCode, normalized)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find class: %w", err)
	}

	if class != nil {
		// Last-write-wins name refresh: whoever matched most recently with a
		// non-empty name owns the display name.
		if req.ClassName != "" && req.ClassName != class.ClassName {
			if err := s.classes.UpdateName(ctx, class.ID, req.ClassName); err != nil {
				return nil, fmt.Errorf("refresh class name: %w", err)
			}
			class.ClassName = req.ClassName
		}
	} else {
		class = &model.Class{
			UniversityID: universityID,
			ClassCode:    normalized,
			ClassName:    req.ClassName,
			Department:   DepartmentForCode(normalized),
		}
		if err := s.classes.Create(ctx, class); err != nil {
			return nil, fmt.Errorf("create class: %w", err)
		}
		s.log.Info().
			Str("class_code", class.ClassCode).
			Str("university_id", universityID.String()).
			Msg("New catalog entry created")
	}

	result := &MatchResult{ClassID: class.ID, Class: class}

	if hasSectionIdentity(req) {
		section, err := s.resolveSection(ctx, class.ID, req)
		if err != nil {
			return nil, err
		}
		result.SectionID = &section.ID
	}

	s.invalidateClassCaches(ctx, userID, class.ID)
	return result, nil
}

// resolveSection finds a section by (class, professor, semester) or creates
// one. Missing professor/semester are stored as empty strings, so "not given"
// and "explicitly empty" land on the same row.
func (s *CatalogService) resolveSection(ctx context.Context, classID uuid.UUID, req *model.MatchClassRequest) (*model.ClassSection, error) {
	section, err := s.sections.FindByIdentity(ctx, classID, req.Professor, req.Semester)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find section: %w", err)
	}
	if section != nil {
		return section, nil
	}

	section = &model.ClassSection{
		ClassID:       classID,
		ProfessorName: req.Professor,
		Semester:      req.Semester,
		DaysOfWeek:    req.Days,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return section, nil
}

// GetClass retrieves one catalog entry.
func (s *CatalogService) GetClass(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	return s.classes.GetByID(ctx, id)
}

// ListClasses returns the full catalog of a campus.
func (s *CatalogService) ListClasses(ctx context.Context, universityID uuid.UUID) ([]model.Class, error) {
	return s.classes.ListByUniversity(ctx, universityID)
}

// invalidateClassCaches drops the caller's cached query state and bumps the
// class roster version so other members' cached classmate lists go stale.
func (s *CatalogService) invalidateClassCaches(ctx context.Context, userID, classID uuid.UUID) {
	uid := userID.String()
	cid := classID.String()
	keys := []string{
		config.CacheKey.UserEnrollmentsKey(uid),
		config.CacheKey.AllClassmatesKey(uid),
		config.CacheKey.ClassmatesKey(uid, cid),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to invalidate class caches")
	}
	if err := s.rdb.Incr(ctx, config.CacheKey.ClassRosterVersionKey(cid)).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to bump roster version")
	}
}

func hasSectionIdentity(req *model.MatchClassRequest) bool {
	return req.Professor != "" || req.Semester != "" || len(req.Days) > 0 ||
		req.StartTime != "" || req.EndTime != "" || req.Location != ""
}

// DepartmentForCode derives the department from the code's leading letters.
// Exported for the backfill-departments tool.
func DepartmentForCode(normalizedCode string) string {
	i := 0
	for i < len(normalizedCode) {
		c := normalizedCode[i]
		if c < 'A' || c > 'Z' {
			break
		}
		i++
	}
	prefix := normalizedCode[:i]
	if prefix == "" {
		return ""
	}
	if dept, ok := departmentByPrefix[strings.ToUpper(prefix)]; ok {
		return dept
	}
	return prefix
}
