package dto

import (
	"github.com/studyconnect/backend/internal/app/models"
)

// --- Request DTOs ---

// CreateNoteRequest carries multipart form fields for a new note.
// Files ride alongside in the multipart body.
type CreateNoteRequest struct {
	Title       string   `form:"title" binding:"required,min=3,max=255" example:"DS Notes"`
	Description string   `form:"description" binding:"max=5000" example:"Full semester lecture notes"`
	Subject     string   `form:"subject" binding:"required,min=2,max=100" example:"computer-science"`
	ContentType string   `form:"contentType" binding:"required,contenttype" example:"lecture-notes"`
	University  string   `form:"university" binding:"required,min=2,max=255" example:"IIT Delhi"`
	Tags        []string `form:"tags" binding:"max=10,dive,max=50"`
}

// UpdateNoteRequest carries editable note fields.
type UpdateNoteRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=255"`
	Description string   `json:"description" binding:"max=5000"`
	Subject     string   `json:"subject" binding:"required,min=2,max=100"`
	ContentType string   `json:"contentType" binding:"required,contenttype"`
	University  string   `json:"university" binding:"required,min=2,max=255"`
	Tags        []string `json:"tags" binding:"max=10,dive,max=50"`
}

// NoteFilter is the parsed query-string filter for note listings.
// Nil fields contribute no predicate.
type NoteFilter struct {
	Subject     *string
	University  *string
	ContentType *string
	Search      *string
	SortBy      models.SortKey
	Limit       int
	Offset      int
}

// RateRequest is shared by the note/vendor/tutor rating endpoints.
type RateRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Review string `json:"review" binding:"max=2000" example:"Very thorough notes"`
}

// CommentRequest is the body for posting a note comment.
type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// --- Response DTOs ---

// NoteFileResponse describes one attachment of a note.
type NoteFileResponse struct {
	ID       int64  `json:"id" example:"12"`
	FileName string `json:"fileName" example:"week5.pdf"`
	FileURL  string `json:"fileUrl" example:"/uploads/notes/ab12.pdf"`
	FileSize int64  `json:"fileSize" example:"1048576"`
	MimeType string `json:"mimeType" example:"application/pdf"`
}

// NoteResponse is the full note representation returned by the API.
type NoteResponse struct {
	ID             int64              `json:"id" example:"15"`
	Title          string             `json:"title" example:"DS Notes"`
	Description    string             `json:"description"`
	Subject        string             `json:"subject" example:"computer-science"`
	ContentType    string             `json:"contentType" example:"lecture-notes"`
	University     string             `json:"university" example:"IIT Delhi"`
	Tags           []string           `json:"tags"`
	UploaderID     int64              `json:"uploaderId" example:"3"`
	UploaderName   string             `json:"uploaderName" example:"Priya Sharma"`
	TotalViews     int64              `json:"totalViews" example:"120"`
	TotalDownloads int64              `json:"totalDownloads" example:"48"`
	AverageRating  float64            `json:"averageRating" example:"4.2"`
	TotalRatings   int64              `json:"totalRatings" example:"11"`
	Files          []NoteFileResponse `json:"files,omitempty"`
	CreatedAt      string             `json:"createdAt" example:"2025-06-15T10:00:00Z"`
	UpdatedAt      string             `json:"updatedAt" example:"2025-06-16T11:30:00Z"`
}

// NoteListResponse is a page of notes plus pagination metadata.
type NoteListResponse struct {
	Items []NoteResponse `json:"items"`
	ListMeta
}

// RatingResponse describes one rating row.
type RatingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Rating    int    `json:"rating" example:"5"`
	Review    string `json:"review,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RatingSummary is returned after a rating upsert: the caller's rating
// plus the recomputed aggregate.
type RatingSummary struct {
	Rating        RatingResponse `json:"rating"`
	AverageRating float64        `json:"averageRating" example:"4.0"`
	TotalRatings  int64          `json:"totalRatings" example:"2"`
}

// CommentResponse describes one comment row.
type CommentResponse struct {
	ID        int64  `json:"id"`
	NoteID    int64  `json:"noteId"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// SavedResponse reports whether the entity is currently saved by the caller.
type SavedResponse struct {
	Saved bool `json:"saved"`
}

// RatingListResponse is a page of ratings plus pagination metadata.
type RatingListResponse struct {
	Items []RatingResponse `json:"items"`
	ListMeta
}

// CommentListResponse is a page of comments plus pagination metadata.
type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	ListMeta
}
