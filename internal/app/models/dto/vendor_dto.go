package dto

import "github.com/studyconnect/backend/internal/app/models"

// CreateVendorRequest carries fields for a new vendor listing.
type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255" example:"Campus Cafe"`
	Description string `json:"description" binding:"max=5000"`
	Category    string `json:"category" binding:"required,min=2,max=100" example:"cafe"`
	Location    string `json:"location" binding:"required,min=2,max=255"`
	Phone       string `json:"phone" binding:"max=20"`
}

// UpdateVendorRequest carries editable vendor fields.
type UpdateVendorRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=5000"`
	Category    string `json:"category" binding:"required,min=2,max=100"`
	Location    string `json:"location" binding:"required,min=2,max=255"`
	Phone       string `json:"phone" binding:"max=20"`
	IsActive    *bool  `json:"isActive"`
}

// VendorFilter is the parsed query-string filter for vendor listings.
type VendorFilter struct {
	Category  *string
	Search    *string
	MinRating *float64
	IsActive  *bool
	SortBy    models.SortKey
	Limit     int
	Offset    int
}

// VendorResponse is the vendor representation returned by the API.
type VendorResponse struct {
	ID            int64   `json:"id"`
	OwnerID       int64   `json:"ownerId"`
	Name          string  `json:"name" example:"Campus Cafe"`
	Description   string  `json:"description"`
	Category      string  `json:"category" example:"cafe"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone,omitempty"`
	AverageRating float64 `json:"averageRating" example:"4.5"`
	TotalRatings  int64   `json:"totalRatings" example:"20"`
	IsActive      bool    `json:"isActive"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// VendorListResponse is a page of vendors plus pagination metadata.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	ListMeta
}
