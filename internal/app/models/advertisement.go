package models

import "time"

// Advertisement is an admin-managed promotional item served to clients.
type Advertisement struct {
	ID             int64       `db:"id" json:"id"`
	Title          string      `db:"title" json:"title"`
	Description    string      `db:"description" json:"description"`
	ImageURL       *string     `db:"image_url" json:"imageUrl,omitempty"`
	TargetURL      *string     `db:"target_url" json:"targetUrl,omitempty"`
	TargetAudience string      `db:"target_audience" json:"targetAudience"`
	Placement      AdPlacement `db:"placement" json:"placement"`
	ExpiresAt      time.Time   `db:"expires_at" json:"expiresAt"`
	IsActive       bool        `db:"is_active" json:"isActive"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}
