package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles user account and profile data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, name, password_hash, university_id, major,
	graduation_year, bio, avatar_url, onboarded, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.UniversityID,
		&u.Major, &u.GraduationYear, &u.Bio, &u.AvatarURL, &u.Onboarded,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, university_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash, u.UniversityID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// UpdateProfile modifies the editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET name = $1, major = $2, graduation_year = $3, bio = $4,
		     avatar_url = $5, updated_at = NOW()
		 WHERE id = $6`,
		u.Name, u.Major, u.GraduationYear, u.Bio, u.AvatarURL, u.ID,
	)
	return err
}

// MarkOnboarded flips the onboarded flag after the first schedule save.
func (r *UserRepository) MarkOnboarded(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET onboarded = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

// UniversityIDOf performs the point lookup used by the class matcher:
// the user's university, or pgx.ErrNoRows when the account has none.
func (r *UserRepository) UniversityIDOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var universityID *uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT university_id FROM users WHERE id = $1`, userID,
	).Scan(&universityID)
	if err != nil {
		return uuid.Nil, err
	}
	if universityID == nil {
		return uuid.Nil, ErrNoUniversity
	}
	return *universityID, nil
}
