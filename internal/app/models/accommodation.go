package models

import "time"

// Accommodation represents a housing listing near a college.
type Accommodation struct {
	ID               int64             `db:"id" json:"id"`
	OwnerID          int64             `db:"owner_id" json:"ownerId"`
	Name             string            `db:"name" json:"name"`
	Description      string            `db:"description" json:"description"`
	College          string            `db:"college" json:"college"`
	Type             AccommodationType `db:"type" json:"type"`
	GenderPreference GenderPreference  `db:"gender_preference" json:"genderPreference"`
	Amenities        []string          `db:"amenities" json:"amenities"`
	Address          string            `db:"address" json:"address"`
	// Price is the monthly price in the smallest currency unit.
	Price     int64     `db:"price" json:"price"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Rooms []*AccommodationRoom `json:"rooms,omitempty"`
}

// AccommodationRoom is a room category within an accommodation.
type AccommodationRoom struct {
	ID              int64     `db:"id" json:"id"`
	AccommodationID int64     `db:"accommodation_id" json:"accommodationId"`
	RoomType        string    `db:"room_type" json:"roomType"`
	Capacity        int       `db:"capacity" json:"capacity"`
	Price           int64     `db:"price" json:"price"`
	Available       bool      `db:"available" json:"available"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// AccommodationVisit is a scheduled viewing of an accommodation.
type AccommodationVisit struct {
	ID              int64     `db:"id" json:"id"`
	AccommodationID int64     `db:"accommodation_id" json:"accommodationId"`
	UserID          int64     `db:"user_id" json:"userId"`
	VisitDate       time.Time `db:"visit_date" json:"visitDate"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// AccommodationBooking is a booking request against an accommodation.
type AccommodationBooking struct {
	ID              int64     `db:"id" json:"id"`
	AccommodationID int64     `db:"accommodation_id" json:"accommodationId"`
	UserID          int64     `db:"user_id" json:"userId"`
	RoomID          *int64    `db:"room_id" json:"roomId,omitempty"`
	MoveInDate      time.Time `db:"move_in_date" json:"moveInDate"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
