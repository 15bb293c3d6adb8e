package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/auth"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/dberrors"
)

// TutorService defines the business operations for tutor profiles,
// availability and session booking.
type TutorService interface {
	ListTutors(ctx context.Context, filter *dto.TutorFilter) (*dto.TutorListResponse, error)
	GetTutor(ctx context.Context, id int64) (*dto.TutorResponse, error)
	CreateTutor(ctx context.Context, userID int64, req *dto.CreateTutorRequest) (*dto.TutorResponse, error)
	UpdateTutor(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error)
	DeleteTutor(ctx context.Context, userID int64, role models.RoleType, id int64) error

	RateTutor(ctx context.Context, userID, tutorID int64, req *dto.RateRequest) (*dto.RatingSummary, error)
	ListRatings(ctx context.Context, tutorID int64, limit, offset int) (*dto.RatingListResponse, error)

	SaveTutor(ctx context.Context, userID, tutorID int64) error
	UnsaveTutor(ctx context.Context, userID, tutorID int64) error
	IsTutorSaved(ctx context.Context, userID, tutorID int64) (bool, error)
	ListSavedTutors(ctx context.Context, userID int64, limit, offset int) (*dto.TutorListResponse, error)

	AddSlot(ctx context.Context, userID int64, role models.RoleType, tutorID int64, req *dto.SlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, userID int64, role models.RoleType, tutorID, slotID int64) error
	BookSession(ctx context.Context, studentID int64, req *dto.BookSessionRequest) (*dto.SessionResponse, error)
	CancelSession(ctx context.Context, userID int64, role models.RoleType, sessionID int64) (*dto.SessionResponse, error)
	ListMySessions(ctx context.Context, userID int64) ([]dto.SessionResponse, error)
}

type tutorService struct {
	repos *repositories.Repositories
	authz *auth.AuthorizationService
}

// NewTutorService creates a new instance of TutorService.
func NewTutorService(repos *repositories.Repositories, authz *auth.AuthorizationService) TutorService {
	return &tutorService{repos: repos, authz: authz}
}

func mapSlotToResponse(s *models.TutorAvailabilitySlot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:        s.ID,
		TutorID:   s.TutorID,
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		IsBooked:  s.IsBooked,
	}
}

func mapTutorToResponse(t *repositories.TutorDetails) dto.TutorResponse {
	resp := dto.TutorResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		TutorName:     t.TutorName,
		Headline:      t.Headline,
		Bio:           t.Bio,
		Subjects:      t.Subjects,
		Mode:          string(t.Mode),
		HourlyRate:    t.HourlyRate,
		AverageRating: t.AverageRating,
		TotalRatings:  t.TotalRatings,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
	for _, slot := range t.AvailabilitySlots {
		resp.Slots = append(resp.Slots, mapSlotToResponse(slot))
	}
	return resp
}

func mapSessionToResponse(s *models.TutorSession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        s.ID,
		TutorID:   s.TutorID,
		StudentID: s.StudentID,
		SlotID:    s.SlotID,
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func (s *tutorService) ListTutors(ctx context.Context, filter *dto.TutorFilter) (*dto.TutorListResponse, error) {
	tutors, total, err := s.repos.Tutor.ListTutors(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.TutorListResponse{
		Items:    make([]dto.TutorResponse, 0, len(tutors)),
		ListMeta: dto.ListMeta{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, t := range tutors {
		resp.Items = append(resp.Items, mapTutorToResponse(t))
	}
	return resp, nil
}

func (s *tutorService) GetTutor(ctx context.Context, id int64) (*dto.TutorResponse, error) {
	t, err := s.repos.Tutor.GetTutorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapTutorToResponse(t)
	return &resp, nil
}

func (s *tutorService) CreateTutor(ctx context.Context, userID int64, req *dto.CreateTutorRequest) (*dto.TutorResponse, error) {
	if err := sanitizeUserText(&req.Headline, &req.Bio); err != nil {
		return nil, err
	}
	for i := range req.Subjects {
		if err := sanitizeUserText(&req.Subjects[i]); err != nil {
			return nil, err
		}
	}

	t := &models.Tutor{
		UserID:     userID,
		Headline:   req.Headline,
		Bio:        req.Bio,
		Subjects:   req.Subjects,
		Mode:       models.TutorMode(req.Mode),
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}
	id, err := s.repos.Tutor.CreateTutor(ctx, t)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("user already has a tutor profile")
		}
		return nil, err
	}
	return s.GetTutor(ctx, id)
}

func (s *tutorService) UpdateTutor(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error) {
	if err := s.authz.CanModifyTutor(ctx, id, userID, role); err != nil {
		return nil, err
	}
	if err := sanitizeUserText(&req.Headline, &req.Bio); err != nil {
		return nil, err
	}
	for i := range req.Subjects {
		if err := sanitizeUserText(&req.Subjects[i]); err != nil {
			return nil, err
		}
	}

	current, err := s.repos.Tutor.GetTutorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	t := &models.Tutor{
		ID:         id,
		Headline:   req.Headline,
		Bio:        req.Bio,
		Subjects:   req.Subjects,
		Mode:       models.TutorMode(req.Mode),
		HourlyRate: req.HourlyRate,
		IsActive:   isActive,
	}
	if err := s.repos.Tutor.UpdateTutor(ctx, t); err != nil {
		return nil, err
	}
	return s.GetTutor(ctx, id)
}

func (s *tutorService) DeleteTutor(ctx context.Context, userID int64, role models.RoleType, id int64) error {
	if err := s.authz.CanModifyTutor(ctx, id, userID, role); err != nil {
		return err
	}
	return s.repos.Tutor.DeleteTutor(ctx, id)
}

func (s *tutorService) RateTutor(ctx context.Context, userID, tutorID int64, req *dto.RateRequest) (*dto.RatingSummary, error) {
	return upsertRating(ctx, s.repos.Rating, repositories.TutorRatingTarget, tutorID, userID, req)
}

func (s *tutorService) ListRatings(ctx context.Context, tutorID int64, limit, offset int) (*dto.RatingListResponse, error) {
	return listRatings(ctx, s.repos.Rating, repositories.TutorRatingTarget, tutorID, limit, offset)
}

func (s *tutorService) SaveTutor(ctx context.Context, userID, tutorID int64) error {
	return s.repos.Saved.Save(ctx, repositories.SavedTutorTarget, userID, tutorID)
}

func (s *tutorService) UnsaveTutor(ctx context.Context, userID, tutorID int64) error {
	return s.repos.Saved.Unsave(ctx, repositories.SavedTutorTarget, userID, tutorID)
}

func (s *tutorService) IsTutorSaved(ctx context.Context, userID, tutorID int64) (bool, error) {
	return s.repos.Saved.IsSaved(ctx, repositories.SavedTutorTarget, userID, tutorID)
}

func (s *tutorService) ListSavedTutors(ctx context.Context, userID int64, limit, offset int) (*dto.TutorListResponse, error) {
	ids, total, err := s.repos.Saved.ListIDs(ctx, repositories.SavedTutorTarget, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.TutorListResponse{
		Items:    make([]dto.TutorResponse, 0, len(ids)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, id := range ids {
		t, err := s.repos.Tutor.GetTutorByID(ctx, id)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrTutorNotFound) {
				continue
			}
			return nil, err
		}
		resp.Items = append(resp.Items, mapTutorToResponse(t))
	}
	return resp, nil
}

func (s *tutorService) AddSlot(ctx context.Context, userID int64, role models.RoleType, tutorID int64, req *dto.SlotRequest) (*dto.SlotResponse, error) {
	if err := s.authz.CanModifyTutor(ctx, tutorID, userID, role); err != nil {
		return nil, err
	}
	if req.StartTime.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("slot must start in the future")
	}

	slot := &models.TutorAvailabilitySlot{
		TutorID:   tutorID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	id, err := s.repos.Tutor.CreateSlot(ctx, slot)
	if err != nil {
		return nil, err
	}
	slot.ID = id
	resp := mapSlotToResponse(slot)
	return &resp, nil
}

func (s *tutorService) DeleteSlot(ctx context.Context, userID int64, role models.RoleType, tutorID, slotID int64) error {
	slot, err := s.repos.Tutor.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.TutorID != tutorID {
		return apperrors.ErrSlotNotFound
	}
	if err := s.authz.CanModifySlot(ctx, slotID, userID, role); err != nil {
		return err
	}
	return s.repos.Tutor.DeleteSlot(ctx, slotID)
}

func (s *tutorService) BookSession(ctx context.Context, studentID int64, req *dto.BookSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.repos.Tutor.BookSession(ctx, req.TutorID, req.SlotID, studentID)
	if err != nil {
		return nil, err
	}
	resp := mapSessionToResponse(session)
	return &resp, nil
}

func (s *tutorService) CancelSession(ctx context.Context, userID int64, role models.RoleType, sessionID int64) (*dto.SessionResponse, error) {
	session, err := s.authz.CanModifySession(ctx, sessionID, userID, role)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCompleted {
		return nil, apperrors.ErrInvalidSessionStatus
	}

	// Cancelling twice is a no-op.
	if session.Status != models.SessionCancelled {
		if err := s.repos.Tutor.UpdateSessionStatus(ctx, sessionID, models.SessionCancelled); err != nil {
			return nil, err
		}
		session.Status = models.SessionCancelled
	}
	resp := mapSessionToResponse(session)
	return &resp, nil
}

func (s *tutorService) ListMySessions(ctx context.Context, userID int64) ([]dto.SessionResponse, error) {
	sessions, err := s.repos.Tutor.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, mapSessionToResponse(session))
	}
	return resp, nil
}
