package handler

import (
	"fmt"

	"quizgen/internal/config"
	"quizgen/internal/domain"
	"quizgen/internal/dto"
	"quizgen/internal/logger"
	"quizgen/internal/middleware"
	"quizgen/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles the OAuth flow and the current-user endpoint.
type AuthHandler struct {
	authService service.AuthService
	appConfig   *config.Config
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		appConfig:   appConfig,
	}
}

// GoogleLogin godoc
// @Summary Initiate Google Login
// @Description Redirects the user to Google's OAuth2 consent page.
// @Tags auth
// @Success 307 {string} string "Redirects to Google"
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	return c.Redirect(h.authService.GetGoogleLoginURL(), fiber.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Google OAuth2 Callback
// @Description Completes the code exchange, resolves the user and redirects
// @Description to the frontend with the bearer token as a query parameter.
// @Tags auth
// @Param code query string true "Authorization code from Google"
// @Success 307 {string} string "Redirects to frontend"
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return domain.NewInvalidInputError("Authorization code is missing")
	}

	token, user, err := h.authService.HandleGoogleCallback(c.Context(), code)
	if err != nil {
		logger.Get().Error("Failed to handle Google callback", zap.Error(err))
		return domain.NewInternalError("Error processing Google login", err)
	}

	logger.Get().Info("Google OAuth callback successful", zap.Int64("userID", user.ID))
	return c.Redirect(fmt.Sprintf("%s?token=%s", h.appConfig.FrontendURL, token), fiber.StatusTemporaryRedirect)
}

// GetMe godoc
// @Summary Current user
// @Description Returns the profile of the authenticated caller.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	userID, ok := identity.UserID()
	if !ok {
		return domain.NewUnauthorizedError("Not authenticated")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		return domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return domain.NewUnauthorizedError("Not authenticated")
	}

	return c.JSON(dto.UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	})
}
