package models

import "time"

// Tutor represents a tutoring profile owned by a user.
type Tutor struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"userId"`
	Headline    string    `db:"headline" json:"headline"`
	Bio         string    `db:"bio" json:"bio"`
	Subjects    []string  `db:"subjects" json:"subjects"`
	Mode        TutorMode `db:"mode" json:"mode"`
	HourlyRate  int64     `db:"hourly_rate" json:"hourlyRate"`
	// Derived rating columns, same invariant as Note.
	AverageRating float64   `db:"average_rating" json:"averageRating"`
	TotalRatings  int64     `db:"total_ratings" json:"totalRatings"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	AvailabilitySlots []*TutorAvailabilitySlot `json:"availabilitySlots,omitempty"`
}

// TutorRating is one user's rating of a tutor; (tutor_id, user_id) is
// unique at the schema level.
type TutorRating struct {
	ID        int64     `db:"id" json:"id"`
	TutorID   int64     `db:"tutor_id" json:"tutorId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	Review    string    `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TutorAvailabilitySlot is a bookable time window published by a tutor.
// Mutations must come from the user owning the parent tutor profile.
type TutorAvailabilitySlot struct {
	ID        int64     `db:"id" json:"id"`
	TutorID   int64     `db:"tutor_id" json:"tutorId"`
	StartTime time.Time `db:"start_time" json:"startTime"`
	EndTime   time.Time `db:"end_time" json:"endTime"`
	IsBooked  bool      `db:"is_booked" json:"isBooked"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TutorSession is a booked session between a student and a tutor.
type TutorSession struct {
	ID        int64         `db:"id" json:"id"`
	TutorID   int64         `db:"tutor_id" json:"tutorId"`
	StudentID int64         `db:"student_id" json:"studentId"`
	SlotID    *int64        `db:"slot_id" json:"slotId,omitempty"`
	StartTime time.Time     `db:"start_time" json:"startTime"`
	EndTime   time.Time     `db:"end_time" json:"endTime"`
	Status    SessionStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}
