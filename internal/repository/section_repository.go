package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository handles class section rows.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetByID retrieves a section by its ID.
func (r *SectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSection, error) {
	s := &model.ClassSection{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, professor_name, semester, days_of_week,
		        start_time, end_time, location, created_at, updated_at
		 FROM class_sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.ClassID, &s.ProfessorName, &s.Semester, &s.DaysOfWeek,
		&s.StartTime, &s.EndTime, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindByIdentity looks up a section by its natural key
// (class_id, professor_name, semester). Missing professor or semester is
// stored and matched as the empty string, which deliberately conflates
// "not given" with "explicitly blank"; the catalog has no way to tell
// them apart. Returns pgx.ErrNoRows when absent.
func (r *SectionRepository) FindByIdentity(ctx context.Context, classID uuid.UUID, professorName, semester string) (*model.ClassSection, error) {
	s := &model.ClassSection{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, professor_name, semester, days_of_week,
		        start_time, end_time, location, created_at, updated_at
		 FROM class_sections
		 WHERE class_id = $1 AND professor_name = $2 AND semester = $3
		 LIMIT 1`,
		classID, professorName, semester,
	).Scan(&s.ID, &s.ClassID, &s.ProfessorName, &s.Semester, &s.DaysOfWeek,
		&s.StartTime, &s.EndTime, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, s *model.ClassSection) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO class_sections (class_id, professor_name, semester,
		        days_of_week, start_time, end_time, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.ClassID, s.ProfessorName, s.Semester, s.DaysOfWeek,
		s.StartTime, s.EndTime, s.Location,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}
