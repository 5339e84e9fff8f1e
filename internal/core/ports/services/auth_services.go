package services

import (
	"context"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade defines operations for issuing and validating tokens
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user
	GenerateAccessToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)

	// GenerateRefreshToken creates an opaque refresh token and persists its hash
	GenerateRefreshToken(ctx context.Context, userID string) (token string, expiresAt time.Time, err error)

	// ValidateAndParseRefreshToken verifies a refresh token against the stored
	// hash and expiry for the user.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)

	// ClearRefreshToken revokes the stored refresh token for the user
	ClearRefreshToken(ctx context.Context, userID string) error
}

// GoogleOAuthHandlerSvcFacade defines operations for the Google sign-in flow
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString produces a random state value for the OAuth flow
	GenerateStateString() (string, error)

	// GetGoogleLoginURL builds the Google consent page URL
	GetGoogleLoginURL(state string) string

	// ExchangeCodeForToken exchanges an authorization code for a token
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the Google profile for the token
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token and extracts the profile
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}
