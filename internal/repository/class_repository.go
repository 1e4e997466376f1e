package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassRepository handles the shared course catalog.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, university_id, class_code, class_name, department, created_at, updated_at
		 FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.UniversityID, &c.ClassCode, &c.ClassName, &c.Department, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindByCode looks up a class within a university matching either the raw or
// the normalized form of a code. Returns pgx.ErrNoRows when absent. No lock
// is taken: two concurrent misses for a brand-new code can both insert
// (see DESIGN.md, catalog write path).
func (r *ClassRepository) FindByCode(ctx context.Context, universityID uuid.UUID, rawCode, normalizedCode string) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, university_id, class_code, class_name, department, created_at, updated_at
		 FROM classes
		 WHERE university_id = $1 AND (class_code = $2 OR class_code = $3)
		 LIMIT 1`,
		universityID, rawCode, normalizedCode,
	).Scan(&c.ID, &c.UniversityID, &c.ClassCode, &c.ClassName, &c.Department, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new catalog class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (university_id, class_code, class_name, department)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		c.UniversityID, c.ClassCode, c.ClassName, c.Department,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateName refreshes the stored class name (last write wins, no merge).
func (r *ClassRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE classes SET class_name = $1, updated_at = NOW() WHERE id = $2`, name, id)
	return err
}

// UpdateDepartment rewrites a class's department. Used by the backfill tool.
func (r *ClassRepository) UpdateDepartment(ctx context.Context, id uuid.UUID, department string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE classes SET department = $1, updated_at = NOW() WHERE id = $2`, department, id)
	return err
}

// ListByUniversity retrieves every catalog class of one university.
func (r *ClassRepository) ListByUniversity(ctx context.Context, universityID uuid.UUID) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, university_id, class_code, class_name, department, created_at, updated_at
		 FROM classes WHERE university_id = $1 ORDER BY class_code`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.UniversityID, &c.ClassCode, &c.ClassName, &c.Department, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
