package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
)

// AdvertisementService defines the operations for admin-managed
// advertisements. Role enforcement happens at the route level.
type AdvertisementService interface {
	ListActive(ctx context.Context, placement *string) ([]dto.AdvertisementResponse, error)
	ListAll(ctx context.Context, limit, offset int) (*dto.AdvertisementListResponse, error)
	Get(ctx context.Context, id int64) (*dto.AdvertisementResponse, error)
	Create(ctx context.Context, req *dto.CreateAdvertisementRequest) (*dto.AdvertisementResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAdvertisementRequest) (*dto.AdvertisementResponse, error)
	Delete(ctx context.Context, id int64) error
}

type advertisementService struct {
	repos *repositories.Repositories
}

// NewAdvertisementService creates a new instance of AdvertisementService.
func NewAdvertisementService(repos *repositories.Repositories) AdvertisementService {
	return &advertisementService{repos: repos}
}

func mapAdToResponse(a *models.Advertisement) dto.AdvertisementResponse {
	return dto.AdvertisementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		ImageURL:       a.ImageURL,
		TargetURL:      a.TargetURL,
		TargetAudience: a.TargetAudience,
		Placement:      string(a.Placement),
		ExpiresAt:      a.ExpiresAt.Format(time.RFC3339),
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *advertisementService) ListActive(ctx context.Context, placement *string) ([]dto.AdvertisementResponse, error) {
	var p *models.AdPlacement
	if placement != nil {
		v := models.AdPlacement(*placement)
		p = &v
	}

	ads, err := s.repos.Advertisement.ListActive(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AdvertisementResponse, 0, len(ads))
	for _, a := range ads {
		resp = append(resp, mapAdToResponse(a))
	}
	return resp, nil
}

func (s *advertisementService) ListAll(ctx context.Context, limit, offset int) (*dto.AdvertisementListResponse, error) {
	ads, total, err := s.repos.Advertisement.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdvertisementListResponse{
		Items:    make([]dto.AdvertisementResponse, 0, len(ads)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, a := range ads {
		resp.Items = append(resp.Items, mapAdToResponse(a))
	}
	return resp, nil
}

func (s *advertisementService) Get(ctx context.Context, id int64) (*dto.AdvertisementResponse, error) {
	a, err := s.repos.Advertisement.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapAdToResponse(a)
	return &resp, nil
}

func (s *advertisementService) Create(ctx context.Context, req *dto.CreateAdvertisementRequest) (*dto.AdvertisementResponse, error) {
	if err := sanitizeUserText(&req.Title, &req.Description, &req.TargetAudience); err != nil {
		return nil, err
	}

	a := &models.Advertisement{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		TargetURL:      req.TargetURL,
		TargetAudience: req.TargetAudience,
		Placement:      models.AdPlacement(req.Placement),
		ExpiresAt:      req.ExpiresAt,
		IsActive:       true,
	}
	id, err := s.repos.Advertisement.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *advertisementService) Update(ctx context.Context, id int64, req *dto.UpdateAdvertisementRequest) (*dto.AdvertisementResponse, error) {
	if err := sanitizeUserText(&req.Title, &req.Description, &req.TargetAudience); err != nil {
		return nil, err
	}

	current, err := s.repos.Advertisement.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	a := &models.Advertisement{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		TargetURL:      req.TargetURL,
		TargetAudience: req.TargetAudience,
		Placement:      models.AdPlacement(req.Placement),
		ExpiresAt:      req.ExpiresAt,
		IsActive:       isActive,
	}
	if err := s.repos.Advertisement.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *advertisementService) Delete(ctx context.Context, id int64) error {
	return s.repos.Advertisement.Delete(ctx, id)
}
