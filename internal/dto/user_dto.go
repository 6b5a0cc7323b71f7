package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds the profile fields consumed from Google's
// userinfo endpoint (OpenID Connect v3 shape).
type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthClaims defines the claims carried by the bearer token. The subject
// is the decimal user id.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
