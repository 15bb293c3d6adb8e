package dto

// UpdateProfileRequest carries the self-editable profile fields. Role
// is deliberately absent: only admins change roles.
type UpdateProfileRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=100"`
	University string  `json:"university" binding:"max=255"`
	AvatarURL  *string `json:"avatarUrl" binding:"omitempty,url"`
}

// UpdateRoleRequest is the admin-only role change body.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=STUDENT VENDOR ADMIN"`
}

// UserResponse is the user representation returned by the API.
type UserResponse struct {
	ID         int64   `json:"id"`
	Subject    string  `json:"subject"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role" example:"STUDENT"`
	University string  `json:"university,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}
