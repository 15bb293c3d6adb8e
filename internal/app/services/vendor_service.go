package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/auth"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

// VendorService defines the business operations for vendor listings.
type VendorService interface {
	ListVendors(ctx context.Context, filter *dto.VendorFilter) (*dto.VendorListResponse, error)
	GetVendor(ctx context.Context, id int64) (*dto.VendorResponse, error)
	CreateVendor(ctx context.Context, userID int64, role models.RoleType, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)
	UpdateVendor(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	DeleteVendor(ctx context.Context, userID int64, role models.RoleType, id int64) error

	RateVendor(ctx context.Context, userID, vendorID int64, req *dto.RateRequest) (*dto.RatingSummary, error)
	ListRatings(ctx context.Context, vendorID int64, limit, offset int) (*dto.RatingListResponse, error)
}

type vendorService struct {
	repos *repositories.Repositories
	authz *auth.AuthorizationService
}

// NewVendorService creates a new instance of VendorService.
func NewVendorService(repos *repositories.Repositories, authz *auth.AuthorizationService) VendorService {
	return &vendorService{repos: repos, authz: authz}
}

func mapVendorToResponse(v *models.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:            v.ID,
		OwnerID:       v.OwnerID,
		Name:          v.Name,
		Description:   v.Description,
		Category:      v.Category,
		Location:      v.Location,
		Phone:         v.Phone,
		AverageRating: v.AverageRating,
		TotalRatings:  v.TotalRatings,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *vendorService) ListVendors(ctx context.Context, filter *dto.VendorFilter) (*dto.VendorListResponse, error) {
	vendors, total, err := s.repos.Vendor.ListVendors(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.VendorListResponse{
		Items:    make([]dto.VendorResponse, 0, len(vendors)),
		ListMeta: dto.ListMeta{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, v := range vendors {
		resp.Items = append(resp.Items, mapVendorToResponse(v))
	}
	return resp, nil
}

func (s *vendorService) GetVendor(ctx context.Context, id int64) (*dto.VendorResponse, error) {
	v, err := s.repos.Vendor.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapVendorToResponse(v)
	return &resp, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, userID int64, role models.RoleType, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if role != models.RoleVendor && role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := sanitizeUserText(&req.Name, &req.Description, &req.Category, &req.Location); err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Phone:       req.Phone,
		IsActive:    true,
	}
	id, err := s.repos.Vendor.CreateVendor(ctx, vendor)
	if err != nil {
		return nil, err
	}
	return s.GetVendor(ctx, id)
}

func (s *vendorService) UpdateVendor(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if err := s.authz.CanModifyVendor(ctx, id, userID, role); err != nil {
		return nil, err
	}
	if err := sanitizeUserText(&req.Name, &req.Description, &req.Category, &req.Location); err != nil {
		return nil, err
	}

	current, err := s.repos.Vendor.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	vendor := &models.Vendor{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Phone:       req.Phone,
		IsActive:    isActive,
	}
	if err := s.repos.Vendor.UpdateVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return s.GetVendor(ctx, id)
}

func (s *vendorService) DeleteVendor(ctx context.Context, userID int64, role models.RoleType, id int64) error {
	if err := s.authz.CanModifyVendor(ctx, id, userID, role); err != nil {
		return err
	}
	return s.repos.Vendor.DeleteVendor(ctx, id)
}

func (s *vendorService) RateVendor(ctx context.Context, userID, vendorID int64, req *dto.RateRequest) (*dto.RatingSummary, error) {
	return upsertRating(ctx, s.repos.Rating, repositories.VendorRatingTarget, vendorID, userID, req)
}

func (s *vendorService) ListRatings(ctx context.Context, vendorID int64, limit, offset int) (*dto.RatingListResponse, error) {
	return listRatings(ctx, s.repos.Rating, repositories.VendorRatingTarget, vendorID, limit, offset)
}
