package dto

import (
	"time"

	"github.com/studyconnect/backend/internal/app/models"
)

// CreateTutorRequest carries fields for a new tutor profile.
type CreateTutorRequest struct {
	Headline   string   `json:"headline" binding:"required,min=5,max=255" example:"Calculus and linear algebra tutor"`
	Bio        string   `json:"bio" binding:"max=5000"`
	Subjects   []string `json:"subjects" binding:"required,min=1,max=10,dive,min=2,max=100"`
	Mode       string   `json:"mode" binding:"required,tutormode" example:"online"`
	HourlyRate int64    `json:"hourlyRate" binding:"required,gt=0" example:"500"`
}

// UpdateTutorRequest carries editable tutor profile fields.
type UpdateTutorRequest struct {
	Headline   string   `json:"headline" binding:"required,min=5,max=255"`
	Bio        string   `json:"bio" binding:"max=5000"`
	Subjects   []string `json:"subjects" binding:"required,min=1,max=10,dive,min=2,max=100"`
	Mode       string   `json:"mode" binding:"required,tutormode"`
	HourlyRate int64    `json:"hourlyRate" binding:"required,gt=0"`
	IsActive   *bool    `json:"isActive"`
}

// TutorFilter is the parsed query-string filter for tutor listings.
type TutorFilter struct {
	Subject       *string
	Mode          *string
	MaxHourlyRate *int64
	Search        *string
	SortBy        models.SortKey
	Limit         int
	Offset        int
}

// SlotRequest publishes a new availability slot.
type SlotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
}

// SlotResponse describes an availability slot.
type SlotResponse struct {
	ID        int64  `json:"id"`
	TutorID   int64  `json:"tutorId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// BookSessionRequest books a tutor session against a slot.
type BookSessionRequest struct {
	TutorID int64 `json:"tutorId" binding:"required,gt=0"`
	SlotID  int64 `json:"slotId" binding:"required,gt=0"`
}

// SessionResponse describes a tutor session booking.
type SessionResponse struct {
	ID        int64  `json:"id"`
	TutorID   int64  `json:"tutorId"`
	StudentID int64  `json:"studentId"`
	SlotID    *int64 `json:"slotId,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status" example:"scheduled"`
	CreatedAt string `json:"createdAt"`
}

// TutorResponse is the tutor representation returned by the API.
type TutorResponse struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"userId"`
	TutorName     string         `json:"tutorName,omitempty"`
	Headline      string         `json:"headline"`
	Bio           string         `json:"bio"`
	Subjects      []string       `json:"subjects"`
	Mode          string         `json:"mode" example:"online"`
	HourlyRate    int64          `json:"hourlyRate" example:"500"`
	AverageRating float64        `json:"averageRating"`
	TotalRatings  int64          `json:"totalRatings"`
	IsActive      bool           `json:"isActive"`
	Slots         []SlotResponse `json:"availabilitySlots,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

// TutorListResponse is a page of tutors plus pagination metadata.
type TutorListResponse struct {
	Items []TutorResponse `json:"items"`
	ListMeta
}
