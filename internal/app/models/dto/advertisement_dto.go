package dto

import "time"

// CreateAdvertisementRequest carries fields for a new advertisement.
type CreateAdvertisementRequest struct {
	Title          string    `json:"title" binding:"required,min=3,max=255"`
	Description    string    `json:"description" binding:"max=2000"`
	ImageURL       *string   `json:"imageUrl" binding:"omitempty,url"`
	TargetURL      *string   `json:"targetUrl" binding:"omitempty,url"`
	TargetAudience string    `json:"targetAudience" binding:"required,min=2,max=100" example:"students"`
	Placement      string    `json:"placement" binding:"required,oneof=banner sidebar feed"`
	ExpiresAt      time.Time `json:"expiresAt" binding:"required"`
}

// UpdateAdvertisementRequest carries editable advertisement fields.
type UpdateAdvertisementRequest struct {
	Title          string    `json:"title" binding:"required,min=3,max=255"`
	Description    string    `json:"description" binding:"max=2000"`
	ImageURL       *string   `json:"imageUrl" binding:"omitempty,url"`
	TargetURL      *string   `json:"targetUrl" binding:"omitempty,url"`
	TargetAudience string    `json:"targetAudience" binding:"required,min=2,max=100"`
	Placement      string    `json:"placement" binding:"required,oneof=banner sidebar feed"`
	ExpiresAt      time.Time `json:"expiresAt" binding:"required"`
	IsActive       *bool     `json:"isActive"`
}

// AdvertisementResponse is the advertisement representation returned by the API.
type AdvertisementResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	TargetURL      *string `json:"targetUrl,omitempty"`
	TargetAudience string  `json:"targetAudience"`
	Placement      string  `json:"placement" example:"banner"`
	ExpiresAt      string  `json:"expiresAt"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// AdvertisementListResponse is a page of advertisements plus pagination metadata.
type AdvertisementListResponse struct {
	Items []AdvertisementResponse `json:"items"`
	ListMeta
}
