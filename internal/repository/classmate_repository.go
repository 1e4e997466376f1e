package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassmateRepository reads the derived classmate relation. Nothing here is
// ever persisted; every method is a pure query over enrollments and users.
type ClassmateRepository struct {
	pool *pgxpool.Pool
}

// NewClassmateRepository creates a new ClassmateRepository.
func NewClassmateRepository(pool *pgxpool.Pool) *ClassmateRepository {
	return &ClassmateRepository{pool: pool}
}

// ClassmateRow is one (user, shared class) pair before aggregation.
type ClassmateRow struct {
	Profile   model.Profile
	ClassID   uuid.UUID
	ClassCode string
	ClassName string
	SectionID *uuid.UUID
}

// ListByClass returns the other active members of one class in a semester,
// excluding the caller. When professorName is non-empty only members whose
// section carries that professor are returned.
func (r *ClassmateRepository) ListByClass(ctx context.Context, classID, excludeUserID uuid.UUID, semester, professorName string) ([]ClassmateRow, error) {
	query := `SELECT u.id, u.name, u.major, u.graduation_year, u.avatar_url,
	                 c.id, c.class_code, c.class_name, e.section_id
	          FROM user_class_enrollments e
	          JOIN users u ON u.id = e.user_id
	          JOIN classes c ON c.id = e.class_id
	          WHERE e.class_id = $1
	            AND e.semester = $2
	            AND e.is_active
	            AND e.user_id <> $3`
	args := []any{classID, semester, excludeUserID}
	if professorName != "" {
		query += `
	            AND EXISTS (
	              SELECT 1 FROM class_sections s
	              WHERE s.id = e.section_id AND s.professor_name = $4
	            )`
		args = append(args, professorName)
	}
	query += `
	          ORDER BY u.name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectClassmateRows(rows)
}

// ListShared returns every (other user, class) pair where the other user holds
// an active enrollment in a class the caller is also actively enrolled in for
// the given semester. When the caller's enrollment carries a section, only
// members of that section count as classmates; a section-less enrollment
// matches the whole class. The service layer folds these into per-user groups.
func (r *ClassmateRepository) ListShared(ctx context.Context, userID uuid.UUID, semester string) ([]ClassmateRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.name, u.major, u.graduation_year, u.avatar_url,
		        c.id, c.class_code, c.class_name, other.section_id
		 FROM user_class_enrollments mine
		 JOIN user_class_enrollments other
		   ON other.class_id = mine.class_id
		  AND other.semester = mine.semester
		  AND other.is_active
		  AND other.user_id <> mine.user_id
		  AND (mine.section_id IS NULL OR other.section_id = mine.section_id)
		 JOIN users u ON u.id = other.user_id
		 JOIN classes c ON c.id = other.class_id
		 WHERE mine.user_id = $1 AND mine.semester = $2 AND mine.is_active
		 ORDER BY u.name, c.class_code`,
		userID, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectClassmateRows(rows)
}

func collectClassmateRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]ClassmateRow, error) {
	var result []ClassmateRow
	for rows.Next() {
		var row ClassmateRow
		var major, avatar *string
		var gradYear *int
		err := rows.Scan(&row.Profile.ID, &row.Profile.Name, &major, &gradYear, &avatar,
			&row.ClassID, &row.ClassCode, &row.ClassName, &row.SectionID)
		if err != nil {
			return nil, err
		}
		if major != nil {
			row.Profile.Major = *major
		}
		if gradYear != nil {
			row.Profile.GraduationYear = *gradYear
		}
		if avatar != nil {
			row.Profile.AvatarURL = *avatar
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
