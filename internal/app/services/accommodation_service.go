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

// AccommodationService defines the business operations for
// accommodation listings.
type AccommodationService interface {
	ListAccommodations(ctx context.Context, filter *dto.AccommodationFilter) (*dto.AccommodationListResponse, error)
	GetAccommodation(ctx context.Context, id int64) (*dto.AccommodationResponse, error)
	CreateAccommodation(ctx context.Context, userID int64, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, userID int64, role models.RoleType, id int64) error

	SaveAccommodation(ctx context.Context, userID, id int64) error
	UnsaveAccommodation(ctx context.Context, userID, id int64) error
	IsAccommodationSaved(ctx context.Context, userID, id int64) (bool, error)
	ListSavedAccommodations(ctx context.Context, userID int64, limit, offset int) (*dto.AccommodationListResponse, error)

	ScheduleVisit(ctx context.Context, userID, id int64, req *dto.VisitRequest) (*models.AccommodationVisit, error)
	CreateBooking(ctx context.Context, userID, id int64, req *dto.BookingRequest) (*models.AccommodationBooking, error)
}

type accommodationService struct {
	repos *repositories.Repositories
	authz *auth.AuthorizationService
}

// NewAccommodationService creates a new instance of AccommodationService.
func NewAccommodationService(repos *repositories.Repositories, authz *auth.AuthorizationService) AccommodationService {
	return &accommodationService{repos: repos, authz: authz}
}

func mapAccommodationToResponse(a *models.Accommodation) dto.AccommodationResponse {
	resp := dto.AccommodationResponse{
		ID:               a.ID,
		OwnerID:          a.OwnerID,
		Name:             a.Name,
		Description:      a.Description,
		College:          a.College,
		Type:             string(a.Type),
		GenderPreference: string(a.GenderPreference),
		Amenities:        a.Amenities,
		Address:          a.Address,
		Price:            a.Price,
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
	for _, r := range a.Rooms {
		resp.Rooms = append(resp.Rooms, dto.RoomResponse{
			ID:        r.ID,
			RoomType:  r.RoomType,
			Capacity:  r.Capacity,
			Price:     r.Price,
			Available: r.Available,
		})
	}
	return resp
}

func (s *accommodationService) ListAccommodations(ctx context.Context, filter *dto.AccommodationFilter) (*dto.AccommodationListResponse, error) {
	listings, total, err := s.repos.Accommodation.ListAccommodations(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.AccommodationListResponse{
		Items:    make([]dto.AccommodationResponse, 0, len(listings)),
		ListMeta: dto.ListMeta{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, a := range listings {
		resp.Items = append(resp.Items, mapAccommodationToResponse(a))
	}
	return resp, nil
}

func (s *accommodationService) GetAccommodation(ctx context.Context, id int64) (*dto.AccommodationResponse, error) {
	a, err := s.repos.Accommodation.GetAccommodationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapAccommodationToResponse(a)
	return &resp, nil
}

func (s *accommodationService) CreateAccommodation(ctx context.Context, userID int64, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error) {
	if err := sanitizeUserText(&req.Name, &req.Description, &req.College, &req.Address); err != nil {
		return nil, err
	}
	for i := range req.Amenities {
		if err := sanitizeUserText(&req.Amenities[i]); err != nil {
			return nil, err
		}
	}

	a := &models.Accommodation{
		OwnerID:          userID,
		Name:             req.Name,
		Description:      req.Description,
		College:          req.College,
		Type:             models.AccommodationType(req.Type),
		GenderPreference: models.GenderPreference(req.GenderPreference),
		Amenities:        req.Amenities,
		Address:          req.Address,
		Price:            req.Price,
		IsActive:         true,
	}
	id, err := s.repos.Accommodation.CreateAccommodation(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.GetAccommodation(ctx, id)
}

func (s *accommodationService) UpdateAccommodation(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error) {
	if err := s.authz.CanModifyAccommodation(ctx, id, userID, role); err != nil {
		return nil, err
	}
	if err := sanitizeUserText(&req.Name, &req.Description, &req.College, &req.Address); err != nil {
		return nil, err
	}
	for i := range req.Amenities {
		if err := sanitizeUserText(&req.Amenities[i]); err != nil {
			return nil, err
		}
	}

	current, err := s.repos.Accommodation.GetAccommodationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	a := &models.Accommodation{
		ID:               id,
		Name:             req.Name,
		Description:      req.Description,
		College:          req.College,
		Type:             models.AccommodationType(req.Type),
		GenderPreference: models.GenderPreference(req.GenderPreference),
		Amenities:        req.Amenities,
		Address:          req.Address,
		Price:            req.Price,
		IsActive:         isActive,
	}
	if err := s.repos.Accommodation.UpdateAccommodation(ctx, a); err != nil {
		return nil, err
	}
	return s.GetAccommodation(ctx, id)
}

func (s *accommodationService) DeleteAccommodation(ctx context.Context, userID int64, role models.RoleType, id int64) error {
	if err := s.authz.CanModifyAccommodation(ctx, id, userID, role); err != nil {
		return err
	}
	return s.repos.Accommodation.DeleteAccommodation(ctx, id)
}

func (s *accommodationService) SaveAccommodation(ctx context.Context, userID, id int64) error {
	return s.repos.Saved.Save(ctx, repositories.SavedAccommodationTarget, userID, id)
}

func (s *accommodationService) UnsaveAccommodation(ctx context.Context, userID, id int64) error {
	return s.repos.Saved.Unsave(ctx, repositories.SavedAccommodationTarget, userID, id)
}

func (s *accommodationService) IsAccommodationSaved(ctx context.Context, userID, id int64) (bool, error) {
	return s.repos.Saved.IsSaved(ctx, repositories.SavedAccommodationTarget, userID, id)
}

func (s *accommodationService) ListSavedAccommodations(ctx context.Context, userID int64, limit, offset int) (*dto.AccommodationListResponse, error) {
	ids, total, err := s.repos.Saved.ListIDs(ctx, repositories.SavedAccommodationTarget, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.AccommodationListResponse{
		Items:    make([]dto.AccommodationResponse, 0, len(ids)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, id := range ids {
		a, err := s.repos.Accommodation.GetAccommodationByID(ctx, id)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrAccommodationNotFound) {
				continue
			}
			return nil, err
		}
		resp.Items = append(resp.Items, mapAccommodationToResponse(a))
	}
	return resp, nil
}

func (s *accommodationService) ScheduleVisit(ctx context.Context, userID, id int64, req *dto.VisitRequest) (*models.AccommodationVisit, error) {
	notes := req.Notes
	if err := sanitizeUserText(&notes); err != nil {
		return nil, err
	}
	if _, err := s.repos.Accommodation.GetAccommodationOwner(ctx, id); err != nil {
		return nil, err
	}
	if req.VisitDate.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("visit date must be in the future")
	}

	visit := &models.AccommodationVisit{
		AccommodationID: id,
		UserID:          userID,
		VisitDate:       req.VisitDate,
		Notes:           notes,
	}
	visitID, err := s.repos.Accommodation.CreateVisit(ctx, visit)
	if err != nil {
		return nil, err
	}
	visit.ID = visitID
	visit.CreatedAt = time.Now().UTC()
	return visit, nil
}

func (s *accommodationService) CreateBooking(ctx context.Context, userID, id int64, req *dto.BookingRequest) (*models.AccommodationBooking, error) {
	if _, err := s.repos.Accommodation.GetAccommodationOwner(ctx, id); err != nil {
		return nil, err
	}
	if req.MoveInDate.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("move-in date must be in the future")
	}

	booking := &models.AccommodationBooking{
		AccommodationID: id,
		UserID:          userID,
		RoomID:          req.RoomID,
		MoveInDate:      req.MoveInDate,
		Status:          "pending",
	}
	bookingID, err := s.repos.Accommodation.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = bookingID
	booking.CreatedAt = time.Now().UTC()
	return booking, nil
}
