package models

import "time"

// User represents a local user row. Subject holds the identity
// provider's stable subject identifier; rows are auto-provisioned the
// first time a valid token for that subject is seen.
type User struct {
	ID         int64     `db:"id" json:"id"`
	Subject    string    `db:"subject" json:"subject"`
	Email      string    `db:"email" json:"email"`
	Name       string    `db:"name" json:"name"`
	Role       RoleType  `db:"role" json:"role"`
	University string    `db:"university" json:"university"`
	AvatarURL  *string   `db:"avatar_url" json:"avatarUrl,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
