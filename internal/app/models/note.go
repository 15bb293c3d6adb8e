package models

import "time"

// Note represents a study material listing.
type Note struct {
	ID             int64       `db:"id" json:"id"`
	Title          string      `db:"title" json:"title"`
	Description    string      `db:"description" json:"description"`
	Subject        string      `db:"subject" json:"subject"`
	ContentType    ContentType `db:"content_type" json:"contentType"`
	University     string      `db:"university" json:"university"`
	Tags           []string    `db:"tags" json:"tags"`
	UploaderID     int64       `db:"uploader_id" json:"uploaderId"`
	TotalViews     int64       `db:"total_views" json:"totalViews"`
	TotalDownloads int64       `db:"total_downloads" json:"totalDownloads"`
	// AverageRating and TotalRatings are derived columns, recomputed
	// inside the rating upsert transaction and never written directly.
	AverageRating float64   `db:"average_rating" json:"averageRating"`
	TotalRatings  int64     `db:"total_ratings" json:"totalRatings"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	Files []*NoteFile `json:"files,omitempty"`
}

// NoteFile is an uploaded attachment belonging to a note. Rows are
// removed with their parent note.
type NoteFile struct {
	ID        int64     `db:"id" json:"id"`
	NoteID    int64     `db:"note_id" json:"noteId"`
	FileName  string    `db:"file_name" json:"fileName"`
	FilePath  string    `db:"file_path" json:"filePath"`
	FileSize  int64     `db:"file_size" json:"fileSize"`
	MimeType  string    `db:"mime_type" json:"mimeType"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NoteRating is one user's rating of a note. (note_id, user_id) is
// unique at the schema level.
type NoteRating struct {
	ID        int64     `db:"id" json:"id"`
	NoteID    int64     `db:"note_id" json:"noteId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	Review    string    `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NoteComment is a user comment on a note. Content is sanitized before
// persistence.
type NoteComment struct {
	ID        int64     `db:"id" json:"id"`
	NoteID    int64     `db:"note_id" json:"noteId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
