package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/studyconnect/backend/internal/app/auth"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/filestorage"
	"github.com/studyconnect/backend/internal/pkg/logger"
	"github.com/studyconnect/backend/internal/pkg/sanitize"
)

// NoteService defines the business operations for study notes.
type NoteService interface {
	ListNotes(ctx context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error)
	GetNote(ctx context.Context, id int64) (*dto.NoteResponse, error)
	CreateNote(ctx context.Context, userID int64, req *dto.CreateNoteRequest, files []*multipart.FileHeader) (*dto.NoteResponse, error)
	UpdateNote(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, userID int64, role models.RoleType, id int64) error
	RecordView(ctx context.Context, id int64) (int64, error)
	RecordDownload(ctx context.Context, id int64) (int64, error)

	RateNote(ctx context.Context, userID, noteID int64, req *dto.RateRequest) (*dto.RatingSummary, error)
	ListRatings(ctx context.Context, noteID int64, limit, offset int) (*dto.RatingListResponse, error)

	AddComment(ctx context.Context, userID, noteID int64, req *dto.CommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, noteID int64, limit, offset int) (*dto.CommentListResponse, error)
	DeleteComment(ctx context.Context, userID int64, role models.RoleType, commentID int64) error

	SaveNote(ctx context.Context, userID, noteID int64) error
	UnsaveNote(ctx context.Context, userID, noteID int64) error
	IsNoteSaved(ctx context.Context, userID, noteID int64) (bool, error)
	ListSavedNotes(ctx context.Context, userID int64, limit, offset int) (*dto.NoteListResponse, error)
}

type noteService struct {
	repos   *repositories.Repositories
	storage filestorage.FileStorage
	authz   *auth.AuthorizationService
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(repos *repositories.Repositories, storage filestorage.FileStorage, authz *auth.AuthorizationService) NoteService {
	return &noteService{repos: repos, storage: storage, authz: authz}
}

// sanitizeUserText gates raw user text. Dangerous markup rejects the
// whole request before any stripping happens, so the caller sees a 400
// instead of silently altered content.
func sanitizeUserText(fields ...*string) error {
	for _, f := range fields {
		if !sanitize.ValidateContentSafety(*f) {
			return apperrors.ErrUnsafeContent
		}
		*f = sanitize.SanitizePlainText(*f)
	}
	return nil
}

func mapNoteToResponse(n *repositories.NoteDetails) dto.NoteResponse {
	resp := dto.NoteResponse{
		ID:             n.ID,
		Title:          n.Title,
		Description:    n.Description,
		Subject:        n.Subject,
		ContentType:    string(n.ContentType),
		University:     n.University,
		Tags:           n.Tags,
		UploaderID:     n.UploaderID,
		UploaderName:   n.UploaderName,
		TotalViews:     n.TotalViews,
		TotalDownloads: n.TotalDownloads,
		AverageRating:  n.AverageRating,
		TotalRatings:   n.TotalRatings,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      n.UpdatedAt.Format(time.RFC3339),
	}
	for _, f := range n.Files {
		resp.Files = append(resp.Files, dto.NoteFileResponse{
			ID:       f.ID,
			FileName: f.FileName,
			FileURL:  f.FilePath,
			FileSize: f.FileSize,
			MimeType: f.MimeType,
		})
	}
	return resp
}

func (s *noteService) ListNotes(ctx context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error) {
	notes, total, err := s.repos.Note.ListNotes(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.NoteListResponse{
		Items:    make([]dto.NoteResponse, 0, len(notes)),
		ListMeta: dto.ListMeta{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, n := range notes {
		resp.Items = append(resp.Items, mapNoteToResponse(n))
	}
	return resp, nil
}

func (s *noteService) GetNote(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	note, err := s.repos.Note.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapNoteToResponse(note)
	return &resp, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID int64, req *dto.CreateNoteRequest, files []*multipart.FileHeader) (*dto.NoteResponse, error) {
	if err := sanitizeUserText(&req.Title, &req.Description, &req.Subject, &req.University); err != nil {
		return nil, err
	}
	for i := range req.Tags {
		if err := sanitizeUserText(&req.Tags[i]); err != nil {
			return nil, err
		}
	}

	for _, fh := range files {
		if err := filestorage.ValidateUpload(fh); err != nil {
			return nil, err
		}
	}

	savedPaths := make([]string, 0, len(files))
	cleanup := func() {
		for _, p := range savedPaths {
			if err := s.storage.DeleteFile(p); err != nil {
				logger.Warn().Err(err).Str("path", p).Msg("Failed to clean up file after aborted note creation")
			}
		}
	}

	noteFiles := make([]*models.NoteFile, 0, len(files))
	for _, fh := range files {
		path, err := s.storage.SaveFileWithPath(fh, "notes")
		if err != nil {
			cleanup()
			return nil, err
		}
		savedPaths = append(savedPaths, path)
		noteFiles = append(noteFiles, &models.NoteFile{
			FileName: fh.Filename,
			FilePath: path,
			FileSize: fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}

	note := &models.Note{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		ContentType: models.ContentType(req.ContentType),
		University:  req.University,
		Tags:        req.Tags,
		UploaderID:  userID,
	}

	noteID, err := s.repos.Note.CreateNoteWithFiles(ctx, note, noteFiles)
	if err != nil {
		cleanup()
		return nil, err
	}

	return s.GetNote(ctx, noteID)
}

func (s *noteService) UpdateNote(ctx context.Context, userID int64, role models.RoleType, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := s.authz.CanModifyNote(ctx, id, userID, role); err != nil {
		return nil, err
	}
	if err := sanitizeUserText(&req.Title, &req.Description, &req.Subject, &req.University); err != nil {
		return nil, err
	}
	for i := range req.Tags {
		if err := sanitizeUserText(&req.Tags[i]); err != nil {
			return nil, err
		}
	}

	note := &models.Note{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		ContentType: models.ContentType(req.ContentType),
		University:  req.University,
		Tags:        req.Tags,
	}
	if err := s.repos.Note.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return s.GetNote(ctx, id)
}

func (s *noteService) DeleteNote(ctx context.Context, userID int64, role models.RoleType, id int64) error {
	if err := s.authz.CanModifyNote(ctx, id, userID, role); err != nil {
		return err
	}

	paths, err := s.repos.Note.DeleteNote(ctx, id)
	if err != nil {
		return err
	}

	// Disk cleanup happens after the commit. A leftover file is
	// harmless, a dangling DB row is not.
	for _, p := range paths {
		if err := s.storage.DeleteFile(p); err != nil {
			logger.Warn().Err(err).Str("path", p).Msg("Failed to delete note file from storage")
		}
	}
	return nil
}

func (s *noteService) RecordView(ctx context.Context, id int64) (int64, error) {
	return s.repos.Note.IncrementViews(ctx, id)
}

func (s *noteService) RecordDownload(ctx context.Context, id int64) (int64, error) {
	return s.repos.Note.IncrementDownloads(ctx, id)
}

func (s *noteService) RateNote(ctx context.Context, userID, noteID int64, req *dto.RateRequest) (*dto.RatingSummary, error) {
	return upsertRating(ctx, s.repos.Rating, repositories.NoteRatingTarget, noteID, userID, req)
}

func (s *noteService) ListRatings(ctx context.Context, noteID int64, limit, offset int) (*dto.RatingListResponse, error) {
	return listRatings(ctx, s.repos.Rating, repositories.NoteRatingTarget, noteID, limit, offset)
}

func (s *noteService) AddComment(ctx context.Context, userID, noteID int64, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	if err := sanitizeUserText(&req.Content); err != nil {
		return nil, err
	}

	id, err := s.repos.Comment.Create(ctx, noteID, userID, req.Content)
	if err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCommentToResponse(comment)
	return &resp, nil
}

func mapCommentToResponse(c *repositories.CommentDetails) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		NoteID:    c.NoteID,
		UserID:    c.UserID,
		UserName:  c.AuthorName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func (s *noteService) ListComments(ctx context.Context, noteID int64, limit, offset int) (*dto.CommentListResponse, error) {
	comments, total, err := s.repos.Comment.ListByNote(ctx, noteID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.CommentListResponse{
		Items:    make([]dto.CommentResponse, 0, len(comments)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, c := range comments {
		resp.Items = append(resp.Items, mapCommentToResponse(c))
	}
	return resp, nil
}

func (s *noteService) DeleteComment(ctx context.Context, userID int64, role models.RoleType, commentID int64) error {
	if err := s.authz.CanModifyComment(ctx, commentID, userID, role); err != nil {
		return err
	}
	return s.repos.Comment.Delete(ctx, commentID)
}

func (s *noteService) SaveNote(ctx context.Context, userID, noteID int64) error {
	return s.repos.Saved.Save(ctx, repositories.SavedNoteTarget, userID, noteID)
}

func (s *noteService) UnsaveNote(ctx context.Context, userID, noteID int64) error {
	return s.repos.Saved.Unsave(ctx, repositories.SavedNoteTarget, userID, noteID)
}

func (s *noteService) IsNoteSaved(ctx context.Context, userID, noteID int64) (bool, error) {
	return s.repos.Saved.IsSaved(ctx, repositories.SavedNoteTarget, userID, noteID)
}

func (s *noteService) ListSavedNotes(ctx context.Context, userID int64, limit, offset int) (*dto.NoteListResponse, error) {
	ids, total, err := s.repos.Saved.ListIDs(ctx, repositories.SavedNoteTarget, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.NoteListResponse{
		Items:    make([]dto.NoteResponse, 0, len(ids)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, id := range ids {
		note, err := s.repos.Note.GetNoteByID(ctx, id)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNoteNotFound) {
				continue
			}
			return nil, err
		}
		resp.Items = append(resp.Items, mapNoteToResponse(note))
	}
	return resp, nil
}
