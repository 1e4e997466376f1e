package service

import (
	"context"
	"errors"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/google/uuid"
)

// UserService handles profile reads and updates.
type UserService struct {
	users    *repository.UserRepository
	campuses *repository.UniversityRepository
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository, campuses *repository.UniversityRepository) *UserService {
	return &UserService{users: users, campuses: campuses}
}

// Get retrieves a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a profile edit and returns the refreshed user.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Major = req.Major
	user.GraduationYear = req.GraduationYear
	user.Bio = req.Bio
	user.AvatarURL = req.AvatarURL

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// University returns the user's campus, or nil when their email domain was
// never matched to one.
func (s *UserService) University(ctx context.Context, userID uuid.UUID) (*model.University, error) {
	universityID, err := s.users.UniversityIDOf(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoUniversity) {
			return nil, nil
		}
		return nil, err
	}
	return s.campuses.GetByID(ctx, universityID)
}

// ListUniversities returns all supported campuses, for signup hints.
func (s *UserService) ListUniversities(ctx context.Context) ([]model.University, error) {
	return s.campuses.List(ctx)
}
