package repository

import (
	"context"
	"time"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository handles enrollment rows.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

const enrollmentColumns = `id, user_id, class_id, section_id, semester,
	term_code, is_active, created_at, updated_at`

func scanEnrollment(row interface{ Scan(dest ...any) error }) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := row.Scan(&e.ID, &e.UserID, &e.ClassID, &e.SectionID, &e.Semester,
		&e.TermCode, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Find looks up an enrollment by (user, class, semester) regardless of the
// is_active flag. Returns pgx.ErrNoRows when absent.
func (r *EnrollmentRepository) Find(ctx context.Context, userID, classID uuid.UUID, semester string) (*model.Enrollment, error) {
	return scanEnrollment(r.pool.QueryRow(ctx,
		`SELECT `+enrollmentColumns+`
		 FROM user_class_enrollments
		 WHERE user_id = $1 AND class_id = $2 AND semester = $3
		 LIMIT 1`,
		userID, classID, semester))
}

// Create inserts a new enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO user_class_enrollments
		        (user_id, class_id, section_id, semester, term_code, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.UserID, e.ClassID, e.SectionID, e.Semester, e.TermCode, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// SetActive soft-enables or disables an enrollment without deletion.
func (r *EnrollmentRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_class_enrollments SET is_active = $1, updated_at = NOW() WHERE id = $2`,
		active, id)
	return err
}

// ListActiveByUser retrieves a user's active enrollments joined to their
// catalog rows, for schedule views and the classmate aggregation.
func (r *EnrollmentRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.EnrolledClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.user_id, e.class_id, e.section_id, e.semester,
		        e.term_code, e.is_active, e.created_at, e.updated_at,
		        c.id, c.university_id, c.class_code, c.class_name, c.department,
		        c.created_at, c.updated_at,
		        s.id, s.professor_name, s.semester, s.days_of_week,
		        s.start_time, s.end_time, s.location, s.created_at, s.updated_at
		 FROM user_class_enrollments e
		 JOIN classes c ON c.id = e.class_id
		 LEFT JOIN class_sections s ON s.id = e.section_id
		 WHERE e.user_id = $1 AND e.is_active
		 ORDER BY c.class_code`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EnrolledClass
	for rows.Next() {
		var ec model.EnrolledClass
		var (
			sID        *uuid.UUID
			sProf      *string
			sSemester  *string
			sDays      []string
			sStart     *string
			sEnd       *string
			sLocation  *string
			sCreatedAt *time.Time
			sUpdatedAt *time.Time
		)
		err := rows.Scan(
			&ec.Enrollment.ID, &ec.Enrollment.UserID, &ec.Enrollment.ClassID,
			&ec.Enrollment.SectionID, &ec.Enrollment.Semester, &ec.Enrollment.TermCode,
			&ec.Enrollment.IsActive, &ec.Enrollment.CreatedAt, &ec.Enrollment.UpdatedAt,
			&ec.Class.ID, &ec.Class.UniversityID, &ec.Class.ClassCode,
			&ec.Class.ClassName, &ec.Class.Department, &ec.Class.CreatedAt, &ec.Class.UpdatedAt,
			&sID, &sProf, &sSemester, &sDays,
			&sStart, &sEnd, &sLocation, &sCreatedAt, &sUpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if sID != nil {
			ec.Section = &model.ClassSection{
				ID:            *sID,
				ClassID:       ec.Enrollment.ClassID,
				ProfessorName: deref(sProf),
				Semester:      deref(sSemester),
				DaysOfWeek:    sDays,
				StartTime:     deref(sStart),
				EndTime:       deref(sEnd),
				Location:      deref(sLocation),
			}
			if sCreatedAt != nil {
				ec.Section.CreatedAt = *sCreatedAt
			}
			if sUpdatedAt != nil {
				ec.Section.UpdatedAt = *sUpdatedAt
			}
		}
		result = append(result, ec)
	}
	return result, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
