package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"quizgen/internal/config"
	"quizgen/internal/domain"
	"quizgen/internal/dto"
	"quizgen/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var (
	ErrFailedToExchangeToken = errors.New("failed to exchange oauth token")
	ErrFailedToGetUserInfo   = errors.New("failed to get user info from google")
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
)

// AuthService drives the Google authorization-code flow and issues and
// verifies the service's own bearer tokens.
type AuthService interface {
	GetGoogleLoginURL() string
	HandleGoogleCallback(ctx context.Context, code string) (token string, user *domain.User, err error)
	CreateToken(userID int64) (string, error)
	ValidateToken(tokenString string) (int64, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

type authService struct {
	userRepo     domain.UserRepository
	oauth2Config *oauth2.Config
	jwtSecret    []byte
	tokenTTL     time.Duration
	userInfoURL  string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, cfg *config.Config) (AuthService, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}

	return &authService{
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		jwtSecret:   []byte(cfg.JWT.SecretKey),
		tokenTTL:    cfg.JWT.TokenTTL,
		userInfoURL: googleUserInfoURL,
	}, nil
}

// GetGoogleLoginURL builds the provider's authorization URL with offline
// access. No local state is created.
func (s *authService) GetGoogleLoginURL() string {
	return s.oauth2Config.AuthCodeURL("", oauth2.AccessTypeOffline)
}

// HandleGoogleCallback exchanges the authorization code, fetches the profile,
// resolves the local user and issues a bearer token for it.
func (s *authService) HandleGoogleCallback(ctx context.Context, code string) (string, *domain.User, error) {
	appLogger := logger.Get()

	googleToken, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToExchangeToken, err)
	}

	client := s.oauth2Config.Client(ctx, googleToken)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToGetUserInfo, err)
	}
	defer resp.Body.Close()

	var userInfo dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if userInfo.Sub == "" || userInfo.Email == "" {
		return "", nil, errors.New("google user info is incomplete")
	}

	user, err := s.findOrCreateUser(ctx, &userInfo)
	if err != nil {
		return "", nil, err
	}

	token, err := s.CreateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create token: %w", err)
	}

	appLogger.Info("User logged in via Google OAuth",
		zap.Int64("userID", user.ID),
		zap.String("email", user.Email))
	return token, user, nil
}

// findOrCreateUser resolves the local user for a Google profile. Returning
// logins reuse the existing row unchanged; only first logins write.
func (s *authService) findOrCreateUser(ctx context.Context, info *dto.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.GetUserByGoogleID(ctx, info.Sub)
	if err != nil {
		return nil, fmt.Errorf("error fetching user by google_id: %w", err)
	}
	if user != nil {
		return user, nil
	}

	newUser := &domain.User{
		Email:     info.Email,
		Name:      info.Name,
		GoogleID:  info.Sub,
		AvatarURL: info.Picture,
	}
	if err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Get().Info("New user created via Google OAuth",
		zap.Int64("userID", newUser.ID),
		zap.String("email", newUser.Email))
	return newUser, nil
}

// CreateToken issues a signed bearer token whose subject is the decimal
// user id, expiring after the configured TTL.
func (s *authService) CreateToken(userID int64) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies signature and expiry and returns the embedded user
// id. Any failure, including a non-numeric subject, yields ErrInvalidJWTToken.
func (s *authService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidJWTToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric subject", ErrInvalidJWTToken)
	}
	return userID, nil
}

// GetUserByID loads the caller's user record, nil when absent.
func (s *authService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
