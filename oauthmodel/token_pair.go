package oauthmodel

// TokenPair is the token section of the login, register, bootstrap and refresh responses.
type TokenPair struct {
	// AccessToken is the bearer credential attached to every API call.
	// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Usage: "Authorization: Bearer <accessToken>"
	// Lifespan: Short-lived; renewed through the refresh endpoint on 401
	AccessToken string `json:"accessToken,omitempty"`

	// RefreshToken is exchanged for a new access token.
	// Example: "9f2c1e0b7a..."
	// Absent: When the server relies on its httpOnly refresh cookie only
	// Rotation: A returned value replaces the held one
	RefreshToken string `json:"refreshToken,omitempty"`
}

// RefreshRequest is the body posted to the refresh endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
