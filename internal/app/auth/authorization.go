package auth

import (
	"context"

	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

// AuthorizationService centralizes resource ownership checks. A failed
// ownership check surfaces the resource's not-found error rather than a
// permission error, so probing cannot distinguish "exists but isn't
// yours" from "does not exist". Admins pass every check.
type AuthorizationService struct {
	repos *repositories.Repositories
}

// NewAuthorizationService creates a new instance of AuthorizationService.
func NewAuthorizationService(repos *repositories.Repositories) *AuthorizationService {
	return &AuthorizationService{repos: repos}
}

func isAdmin(role models.RoleType) bool {
	return role == models.RoleAdmin
}

// CanModifyNote checks that the user uploaded the note or is an admin.
func (s *AuthorizationService) CanModifyNote(ctx context.Context, noteID, userID int64, role models.RoleType) error {
	ownerID, err := s.repos.Note.GetNoteOwner(ctx, noteID)
	if err != nil {
		return err
	}
	if ownerID != userID && !isAdmin(role) {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// CanModifyVendor checks that the user owns the vendor or is an admin.
func (s *AuthorizationService) CanModifyVendor(ctx context.Context, vendorID, userID int64, role models.RoleType) error {
	ownerID, err := s.repos.Vendor.GetVendorOwner(ctx, vendorID)
	if err != nil {
		return err
	}
	if ownerID != userID && !isAdmin(role) {
		return apperrors.ErrVendorNotFound
	}
	return nil
}

// CanModifyAccommodation checks that the user owns the accommodation or
// is an admin.
func (s *AuthorizationService) CanModifyAccommodation(ctx context.Context, accommodationID, userID int64, role models.RoleType) error {
	ownerID, err := s.repos.Accommodation.GetAccommodationOwner(ctx, accommodationID)
	if err != nil {
		return err
	}
	if ownerID != userID && !isAdmin(role) {
		return apperrors.ErrAccommodationNotFound
	}
	return nil
}

// CanModifyTutor checks that the user owns the tutor profile or is an
// admin.
func (s *AuthorizationService) CanModifyTutor(ctx context.Context, tutorID, userID int64, role models.RoleType) error {
	ownerID, err := s.repos.Tutor.GetTutorOwner(ctx, tutorID)
	if err != nil {
		return err
	}
	if ownerID != userID && !isAdmin(role) {
		return apperrors.ErrTutorNotFound
	}
	return nil
}

// CanModifySlot checks slot ownership transitively through the parent
// tutor profile.
func (s *AuthorizationService) CanModifySlot(ctx context.Context, slotID, userID int64, role models.RoleType) error {
	slot, err := s.repos.Tutor.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if err := s.CanModifyTutor(ctx, slot.TutorID, userID, role); err != nil {
		return apperrors.ErrSlotNotFound
	}
	return nil
}

// CanModifyComment checks that the user wrote the comment or is an admin.
func (s *AuthorizationService) CanModifyComment(ctx context.Context, commentID, userID int64, role models.RoleType) error {
	comment, err := s.repos.Comment.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID && !isAdmin(role) {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// CanModifySession checks that the user is a party to the session, as
// the booking student or as the owner of the tutor profile.
func (s *AuthorizationService) CanModifySession(ctx context.Context, sessionID, userID int64, role models.RoleType) (*models.TutorSession, error) {
	session, err := s.repos.Tutor.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.StudentID == userID || isAdmin(role) {
		return session, nil
	}
	tutorOwner, err := s.repos.Tutor.GetTutorOwner(ctx, session.TutorID)
	if err == nil && tutorOwner == userID {
		return session, nil
	}
	return nil, apperrors.ErrSessionNotFound
}
