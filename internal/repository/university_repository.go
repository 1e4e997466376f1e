package repository

import (
	"context"
	"strings"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniversityRepository handles university data access.
type UniversityRepository struct {
	pool *pgxpool.Pool
}

// NewUniversityRepository creates a new UniversityRepository.
func NewUniversityRepository(pool *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{pool: pool}
}

// GetByID retrieves a university by its ID.
func (r *UniversityRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.University, error) {
	u := &model.University{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email_domain, created_at, updated_at
		 FROM universities WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.EmailDomain, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmailDomain retrieves the university owning an email domain.
func (r *UniversityRepository) GetByEmailDomain(ctx context.Context, domain string) (*model.University, error) {
	u := &model.University{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email_domain, created_at, updated_at
		 FROM universities WHERE email_domain = $1`, strings.ToLower(domain),
	).Scan(&u.ID, &u.Name, &u.EmailDomain, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves all universities ordered by name.
func (r *UniversityRepository) List(ctx context.Context) ([]model.University, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email_domain, created_at, updated_at
		 FROM universities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []model.University
	for rows.Next() {
		var u model.University
		if err := rows.Scan(&u.ID, &u.Name, &u.EmailDomain, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}

// Create inserts a new university.
func (r *UniversityRepository) Create(ctx context.Context, u *model.University) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO universities (name, email_domain)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		u.Name, strings.ToLower(u.EmailDomain),
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}
