package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
)

// UserService defines the profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, userID int64, role models.RoleType) (*dto.UserResponse, error)
}

type userService struct {
	repos *repositories.Repositories
}

// NewUserService creates a new instance of UserService.
func NewUserService(repos *repositories.Repositories) UserService {
	return &userService{repos: repos}
}

func mapUserToResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Subject:    u.Subject,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		University: u.University,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	u, err := s.repos.User.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapUserToResponse(u)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := sanitizeUserText(&req.Name, &req.University); err != nil {
		return nil, err
	}
	if err := s.repos.User.UpdateProfile(ctx, userID, req.Name, req.University, req.AvatarURL); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *userService) UpdateRole(ctx context.Context, userID int64, role models.RoleType) (*dto.UserResponse, error) {
	if err := s.repos.User.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
