package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/google/uuid"
)

// ErrNotClubMember rejects posting to clubs the user has not joined.
var ErrNotClubMember = errors.New("not a member of this club")

const clubFeedPageSize = 20

// ClubService handles student organizations and their feeds.
type ClubService struct {
	clubs *repository.ClubRepository
	users *repository.UserRepository
}

// NewClubService creates a new ClubService.
func NewClubService(clubs *repository.ClubRepository, users *repository.UserRepository) *ClubService {
	return &ClubService{clubs: clubs, users: users}
}

// List returns the clubs of the caller's campus.
func (s *ClubService) List(ctx context.Context, userID uuid.UUID) ([]model.Club, error) {
	universityID, err := s.users.UniversityIDOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.clubs.ListByUniversity(ctx, universityID)
}

// ListMine returns the clubs the caller belongs to.
func (s *ClubService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Club, error) {
	return s.clubs.ListByMember(ctx, userID)
}

// Create founds a club on the caller's campus with the caller as the first
// member.
func (s *ClubService) Create(ctx context.Context, userID uuid.UUID, req *model.CreateClubRequest) (*model.Club, error) {
	universityID, err := s.users.UniversityIDOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	club := &model.Club{
		UniversityID: universityID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		CreatedBy:    userID,
	}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}
	return club, nil
}

// Join adds the caller to a club. Joining twice is a no-op.
func (s *ClubService) Join(ctx context.Context, clubID, userID uuid.UUID) error {
	if _, err := s.clubs.GetByID(ctx, clubID); err != nil {
		return err
	}
	return s.clubs.Join(ctx, clubID, userID)
}

// Leave removes the caller from a club.
func (s *ClubService) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	return s.clubs.Leave(ctx, clubID, userID)
}

// Post publishes to a club feed. Members only.
func (s *ClubService) Post(ctx context.Context, clubID, userID uuid.UUID, req *model.CreateClubPostRequest) (*model.ClubPost, error) {
	ok, err := s.clubs.IsMember(ctx, clubID, userID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return nil, ErrNotClubMember
	}

	post := &model.ClubPost{
		ClubID:   clubID,
		AuthorID: userID,
		Body:     req.Body,
	}
	if err := s.clubs.InsertPost(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Feed returns one page of a club's posts, newest first, with the total for
// pagination.
func (s *ClubService) Feed(ctx context.Context, clubID uuid.UUID, page int) ([]model.ClubPost, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * clubFeedPageSize
	return s.clubs.ListPosts(ctx, clubID, clubFeedPageSize, offset)
}
