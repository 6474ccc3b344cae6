package oauthmodel

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a user, optionally joining a tenant through an invitation code.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	InvitationCode string `json:"invitationCode,omitempty"`
}

// BootstrapRequest creates the first tenant and its administrator from an activation code.
type BootstrapRequest struct {
	ActivationCode string `json:"activationCode"`
	TenantName     string `json:"tenantName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
}

type ActivationRequest struct {
	Code string `json:"code"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type RoleUpdate struct {
	Role string `json:"role"`
}
