package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

// stubNoteService lets each test override just the methods it exercises.
type stubNoteService struct {
	listNotes  func(ctx context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error)
	getNote    func(ctx context.Context, id int64) (*dto.NoteResponse, error)
	recordView func(ctx context.Context, id int64) (int64, error)
}

func (s *stubNoteService) ListNotes(ctx context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error) {
	return s.listNotes(ctx, filter)
}

func (s *stubNoteService) GetNote(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	return s.getNote(ctx, id)
}

func (s *stubNoteService) CreateNote(context.Context, int64, *dto.CreateNoteRequest, []*multipart.FileHeader) (*dto.NoteResponse, error) {
	return nil, nil
}

func (s *stubNoteService) UpdateNote(context.Context, int64, models.RoleType, int64, *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	return nil, nil
}

func (s *stubNoteService) DeleteNote(context.Context, int64, models.RoleType, int64) error {
	return nil
}

func (s *stubNoteService) RecordView(ctx context.Context, id int64) (int64, error) {
	return s.recordView(ctx, id)
}

func (s *stubNoteService) RecordDownload(context.Context, int64) (int64, error) { return 0, nil }

func (s *stubNoteService) RateNote(context.Context, int64, int64, *dto.RateRequest) (*dto.RatingSummary, error) {
	return nil, nil
}

func (s *stubNoteService) ListRatings(context.Context, int64, int, int) (*dto.RatingListResponse, error) {
	return nil, nil
}

func (s *stubNoteService) AddComment(context.Context, int64, int64, *dto.CommentRequest) (*dto.CommentResponse, error) {
	return nil, nil
}

func (s *stubNoteService) ListComments(context.Context, int64, int, int) (*dto.CommentListResponse, error) {
	return nil, nil
}

func (s *stubNoteService) DeleteComment(context.Context, int64, models.RoleType, int64) error {
	return nil
}

func (s *stubNoteService) SaveNote(context.Context, int64, int64) error   { return nil }
func (s *stubNoteService) UnsaveNote(context.Context, int64, int64) error { return nil }
func (s *stubNoteService) IsNoteSaved(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func (s *stubNoteService) ListSavedNotes(context.Context, int64, int, int) (*dto.NoteListResponse, error) {
	return nil, nil
}

func newNoteTestRouter(svc *stubNoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewNoteController(svc)
	router.GET("/notes", ctrl.ListNotes)
	router.GET("/notes/:id", ctrl.GetNote)
	router.POST("/notes/:id/view", ctrl.RecordView)
	return router
}

func TestListNotesQueryValidation(t *testing.T) {
	svc := &stubNoteService{
		listNotes: func(_ context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error) {
			return &dto.NoteListResponse{
				Items:    []dto.NoteResponse{},
				ListMeta: dto.ListMeta{Total: 0, Limit: filter.Limit, Offset: filter.Offset},
			}, nil
		},
	}
	router := newNoteTestRouter(svc)

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "no params", url: "/notes", wantStatus: http.StatusOK},
		{name: "valid filters", url: "/notes?subject=calculus&contentType=summary&sortBy=popular", wantStatus: http.StatusOK},
		{name: "bad sortBy", url: "/notes?sortBy=alphabetical", wantStatus: http.StatusBadRequest},
		{name: "bad contentType", url: "/notes?contentType=thesis", wantStatus: http.StatusBadRequest},
		{name: "bad limit", url: "/notes?limit=-3", wantStatus: http.StatusBadRequest},
		{name: "bad offset", url: "/notes?offset=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.url, nil)
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListNotesPassesFilterThrough(t *testing.T) {
	var captured *dto.NoteFilter
	svc := &stubNoteService{
		listNotes: func(_ context.Context, filter *dto.NoteFilter) (*dto.NoteListResponse, error) {
			captured = filter
			return &dto.NoteListResponse{Items: []dto.NoteResponse{}}, nil
		},
	}
	router := newNoteTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notes?subject=physics&search=waves&limit=5&offset=10&sortBy=rating", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.Subject)
	assert.Equal(t, "physics", *captured.Subject)
	require.NotNil(t, captured.Search)
	assert.Equal(t, "waves", *captured.Search)
	assert.Equal(t, models.SortRating, captured.SortBy)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, 10, captured.Offset)
}

func TestGetNote(t *testing.T) {
	t.Run("missing note maps to 404", func(t *testing.T) {
		svc := &stubNoteService{
			getNote: func(context.Context, int64) (*dto.NoteResponse, error) {
				return nil, apperrors.ErrNoteNotFound
			},
		}
		router := newNoteTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/notes/42", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non numeric id is a 400", func(t *testing.T) {
		svc := &stubNoteService{}
		router := newNoteTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/notes/abc", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordView(t *testing.T) {
	var viewedID int64
	svc := &stubNoteService{
		recordView: func(_ context.Context, id int64) (int64, error) {
			viewedID = id
			return 8, nil
		},
	}
	router := newNoteTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notes/7/view", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), viewedID)
	assert.Contains(t, rec.Body.String(), "8")
}
