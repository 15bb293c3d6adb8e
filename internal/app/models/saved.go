package models

import "time"

// SavedNote marks a note bookmarked by a user. (user_id, note_id) is
// unique at the schema level; duplicate saves are idempotent no-ops.
type SavedNote struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	NoteID    int64     `db:"note_id" json:"noteId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// SavedAccommodation marks an accommodation bookmarked by a user.
type SavedAccommodation struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"userId"`
	AccommodationID int64     `db:"accommodation_id" json:"accommodationId"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// SavedTutor marks a tutor bookmarked by a user.
type SavedTutor struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	TutorID   int64     `db:"tutor_id" json:"tutorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
