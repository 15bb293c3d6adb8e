package dto

import (
	"time"

	"github.com/studyconnect/backend/internal/app/models"
)

// CreateAccommodationRequest carries fields for a new accommodation listing.
type CreateAccommodationRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=255" example:"Sunrise Hostel"`
	Description      string   `json:"description" binding:"max=5000"`
	College          string   `json:"college" binding:"required,min=2,max=255"`
	Type             string   `json:"type" binding:"required,oneof=hostel pg apartment shared-room"`
	GenderPreference string   `json:"genderPreference" binding:"required,oneof=any male female"`
	Amenities        []string `json:"amenities" binding:"max=20,dive,max=50"`
	Address          string   `json:"address" binding:"required,min=5,max=500"`
	Price            int64    `json:"price" binding:"required,gt=0" example:"8000"`
}

// UpdateAccommodationRequest carries editable accommodation fields.
type UpdateAccommodationRequest struct {
	Name             string   `json:"name" binding:"required,min=2,max=255"`
	Description      string   `json:"description" binding:"max=5000"`
	College          string   `json:"college" binding:"required,min=2,max=255"`
	Type             string   `json:"type" binding:"required,oneof=hostel pg apartment shared-room"`
	GenderPreference string   `json:"genderPreference" binding:"required,oneof=any male female"`
	Amenities        []string `json:"amenities" binding:"max=20,dive,max=50"`
	Address          string   `json:"address" binding:"required,min=5,max=500"`
	Price            int64    `json:"price" binding:"required,gt=0"`
	IsActive         *bool    `json:"isActive"`
}

// AccommodationFilter is the parsed query-string filter for
// accommodation listings. Price bounds are inclusive.
type AccommodationFilter struct {
	College          *string
	Type             *string
	GenderPreference *string
	MinPrice         *int64
	MaxPrice         *int64
	Amenities        []string
	Search           *string
	SortBy           models.SortKey
	Limit            int
	Offset           int
}

// VisitRequest schedules an accommodation viewing.
type VisitRequest struct {
	VisitDate time.Time `json:"visitDate" binding:"required"`
	Notes     string    `json:"notes" binding:"max=1000"`
}

// BookingRequest creates an accommodation booking.
type BookingRequest struct {
	RoomID     *int64    `json:"roomId"`
	MoveInDate time.Time `json:"moveInDate" binding:"required"`
}

// RoomResponse describes a room category of an accommodation.
type RoomResponse struct {
	ID        int64  `json:"id"`
	RoomType  string `json:"roomType" example:"double"`
	Capacity  int    `json:"capacity" example:"2"`
	Price     int64  `json:"price" example:"6500"`
	Available bool   `json:"available"`
}

// AccommodationResponse is the accommodation representation returned by the API.
type AccommodationResponse struct {
	ID               int64          `json:"id"`
	OwnerID          int64          `json:"ownerId"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	College          string         `json:"college"`
	Type             string         `json:"type" example:"hostel"`
	GenderPreference string         `json:"genderPreference" example:"any"`
	Amenities        []string       `json:"amenities"`
	Address          string         `json:"address"`
	Price            int64          `json:"price" example:"8000"`
	IsActive         bool           `json:"isActive"`
	Rooms            []RoomResponse `json:"rooms,omitempty"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

// AccommodationListResponse is a page of accommodations plus pagination metadata.
type AccommodationListResponse struct {
	Items []AccommodationResponse `json:"items"`
	ListMeta
}
