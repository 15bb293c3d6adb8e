package models

import "time"

// Vendor represents a service provider listing (cafes, print shops,
// laundry and similar student-facing services).
type Vendor struct {
	ID          int64  `db:"id" json:"id"`
	OwnerID     int64  `db:"owner_id" json:"ownerId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Location    string `db:"location" json:"location"`
	Phone       string `db:"phone" json:"phone"`
	// Derived rating columns, same invariant as Note.
	AverageRating float64   `db:"average_rating" json:"averageRating"`
	TotalRatings  int64     `db:"total_ratings" json:"totalRatings"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// VendorRating is one user's rating of a vendor; (vendor_id, user_id)
// is unique at the schema level.
type VendorRating struct {
	ID        int64     `db:"id" json:"id"`
	VendorID  int64     `db:"vendor_id" json:"vendorId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	Review    string    `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
