package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const classmatesCacheTTL = 5 * time.Minute

// ClassmateService computes the derived classmate relation. Results are
// query-scoped: nothing is persisted, and cached payloads expire quickly
// because enrollments churn during add/drop.
type ClassmateService struct {
	rdb        *redis.Client
	classmates *repository.ClassmateRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewClassmateService creates a new ClassmateService.
func NewClassmateService(rdb *redis.Client, classmates *repository.ClassmateRepository) *ClassmateService {
	return &ClassmateService{
		rdb:        rdb,
		classmates: classmates,
		log:        log.With().Str("component", "classmate_service").Logger(),
		now:        time.Now,
	}
}

// ListByClass returns the other members of one class this semester. A
// non-empty professorName narrows the list to members of that professor's
// section. Only reads with no professor filter go through the cache; filtered
// reads are rare enough to hit the database directly.
func (s *ClassmateService) ListByClass(ctx context.Context, userID, classID uuid.UUID, semester, professorName string) ([]model.Classmate, error) {
	if semester == "" {
		semester = CurrentSemester(s.now())
	}

	cacheKey := config.CacheKey.ClassmatesKey(userID.String(), classID.String())
	if professorName == "" {
		if cached := s.readCache(ctx, cacheKey); cached != nil {
			return cached, nil
		}
	}

	rows, err := s.classmates.ListByClass(ctx, classID, userID, semester, professorName)
	if err != nil {
		return nil, fmt.Errorf("list classmates: %w", err)
	}
	result := foldClassmates(rows)

	if professorName == "" {
		s.writeCache(ctx, cacheKey, result)
	}
	return result, nil
}

// All aggregates classmates across the caller's full schedule: every other
// user sharing at least one active enrollment, with the shared classes
// grouped per user.
func (s *ClassmateService) All(ctx context.Context, userID uuid.UUID, semester string) ([]model.Classmate, error) {
	if semester == "" {
		semester = CurrentSemester(s.now())
	}

	cacheKey := config.CacheKey.AllClassmatesKey(userID.String())
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	rows, err := s.classmates.ListShared(ctx, userID, semester)
	if err != nil {
		return nil, fmt.Errorf("list shared enrollments: %w", err)
	}
	result := foldClassmates(rows)

	s.writeCache(ctx, cacheKey, result)
	return result, nil
}

// foldClassmates groups raw (user, class) rows into one Classmate per user,
// preserving the row order of first appearance.
func foldClassmates(rows []repository.ClassmateRow) []model.Classmate {
	index := make(map[uuid.UUID]int, len(rows))
	result := make([]model.Classmate, 0, len(rows))
	for _, row := range rows {
		shared := model.SharedClass{
			ClassID:   row.ClassID,
			ClassCode: row.ClassCode,
			ClassName: row.ClassName,
			SectionID: row.SectionID,
		}
		if i, ok := index[row.Profile.ID]; ok {
			result[i].SharedClasses = append(result[i].SharedClasses, shared)
			continue
		}
		index[row.Profile.ID] = len(result)
		result = append(result, model.Classmate{
			UserID:        row.Profile.ID,
			Profile:       row.Profile,
			SharedClasses: []model.SharedClass{shared},
		})
	}
	return result
}

func (s *ClassmateService) readCache(ctx context.Context, key string) []model.Classmate {
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("Classmate cache read failed")
		}
		return nil
	}
	var result []model.Classmate
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil
	}
	return result
}

func (s *ClassmateService) writeCache(ctx context.Context, key string, result []model.Classmate) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, classmatesCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Classmate cache write failed")
	}
}
