package dto

import "time"

// LoginRequest defines the credentials login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest identifies whose refresh-token cookie is being redeemed.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// LoginResponse is returned on successful authentication. The refresh token
// travels in an http-only cookie, not in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// GoogleIDTokenLoginRequest carries a Google ID token obtained by the client.
type GoogleIDTokenLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
