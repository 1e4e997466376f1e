package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClubRepository handles clubs, memberships and club feed posts.
type ClubRepository struct {
	pool *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository.
func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

const clubSelect = `SELECT cl.id, cl.university_id, cl.name, cl.description,
	cl.category, cl.created_by, cl.created_at, cl.updated_at,
	(SELECT COUNT(*) FROM club_members cm WHERE cm.club_id = cl.id) AS member_count
	FROM clubs cl`

func scanClub(row interface{ Scan(dest ...any) error }) (*model.Club, error) {
	c := &model.Club{}
	err := row.Scan(&c.ID, &c.UniversityID, &c.Name, &c.Description,
		&c.Category, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.MemberCount)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves one club with its member count.
func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	return scanClub(r.pool.QueryRow(ctx, clubSelect+` WHERE cl.id = $1`, id))
}

// ListByUniversity returns all clubs of a campus ordered by name.
func (r *ClubRepository) ListByUniversity(ctx context.Context, universityID uuid.UUID) ([]model.Club, error) {
	rows, err := r.pool.Query(ctx, clubSelect+` WHERE cl.university_id = $1 ORDER BY cl.name`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []model.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// ListByMember returns the clubs a user belongs to.
func (r *ClubRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]model.Club, error) {
	rows, err := r.pool.Query(ctx, clubSelect+`
		 JOIN club_members me ON me.club_id = cl.id
		 WHERE me.user_id = $1 ORDER BY cl.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []model.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// Create inserts a club and enrolls the founder as its first member.
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO clubs (university_id, name, description, category, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		club.UniversityID, club.Name, club.Description, club.Category, club.CreatedBy,
	).Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO club_members (club_id, user_id) VALUES ($1, $2)`,
		club.ID, club.CreatedBy)
	if err != nil {
		return err
	}
	club.MemberCount = 1
	return tx.Commit(ctx)
}

// Join adds a member; joining twice is a no-op.
func (r *ClubRepository) Join(ctx context.Context, clubID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO club_members (club_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (club_id, user_id) DO NOTHING`,
		clubID, userID)
	return err
}

// Leave removes a membership.
func (r *ClubRepository) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`,
		clubID, userID)
	return err
}

// IsMember reports whether the user belongs to the club.
func (r *ClubRepository) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM club_members WHERE club_id = $1 AND user_id = $2
		 )`, clubID, userID).Scan(&ok)
	return ok, err
}

// InsertPost persists one feed post.
func (r *ClubRepository) InsertPost(ctx context.Context, post *model.ClubPost) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO club_posts (club_id, author_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		post.ClubID, post.AuthorID, post.Body,
	).Scan(&post.ID, &post.CreatedAt)
}

// ListPosts returns a page of the club feed, newest first.
func (r *ClubRepository) ListPosts(ctx context.Context, clubID uuid.UUID, limit, offset int) ([]model.ClubPost, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM club_posts WHERE club_id = $1`, clubID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.club_id, p.author_id, p.body, p.created_at,
		        u.id, u.name, u.major, u.graduation_year, u.avatar_url
		 FROM club_posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.club_id = $1
		 ORDER BY p.created_at DESC
		 LIMIT $2 OFFSET $3`, clubID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []model.ClubPost
	for rows.Next() {
		var p model.ClubPost
		var author model.Profile
		var major, avatar *string
		var gradYear *int
		err := rows.Scan(&p.ID, &p.ClubID, &p.AuthorID, &p.Body, &p.CreatedAt,
			&author.ID, &author.Name, &major, &gradYear, &avatar)
		if err != nil {
			return nil, 0, err
		}
		if major != nil {
			author.Major = *major
		}
		if gradYear != nil {
			author.GraduationYear = *gradYear
		}
		if avatar != nil {
			author.AvatarURL = *avatar
		}
		p.Author = &author
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}
