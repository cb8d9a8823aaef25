package dto

// ── users ──

// CreateUserRequest registers a new user profile (admin only).
type CreateUserRequest struct {
	Username       string `json:"username"         binding:"required,min=3,max=150"`
	FullName       string `json:"full_name"        binding:"required,min=2,max=200"`
	Password       string `json:"password"         binding:"required,min=8,max=72"`
	Role           string `json:"role"             binding:"required"`
	Phone          string `json:"phone"            binding:"omitempty,max=15"`
	Department     string `json:"department"       binding:"omitempty,max=100"`
	IsActiveHolder *bool  `json:"is_active_holder"`
	IsRecordKeeper bool   `json:"is_record_keeper"`
}

// UpdateUserRequest edits a user profile (admin only).
type UpdateUserRequest struct {
	FullName       *string `json:"full_name"        binding:"omitempty,min=2,max=200"`
	Phone          *string `json:"phone"            binding:"omitempty,max=15"`
	Department     *string `json:"department"       binding:"omitempty,max=100"`
	IsActiveHolder *bool   `json:"is_active_holder"`
	IsRecordKeeper *bool   `json:"is_record_keeper"`
}

// UserListRequest filters the user listing.
type UserListRequest struct {
	PaginationRequest
	Role          string `form:"role"`
	ActiveHolders bool   `form:"active_holders"`
	RecordKeepers bool   `form:"record_keepers"`
	Keyword       string `form:"keyword"`
}

// UserResponse is the public view of a user profile.
type UserResponse struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	RoleLabel      string `json:"role_label"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department,omitempty"`
	IsActiveHolder bool   `json:"is_active_holder"`
	IsRecordKeeper bool   `json:"is_record_keeper"`
}

// HolderOption is one entry of a holder dropdown, filtered by role and
// scoped to active holders.
type HolderOption struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}
