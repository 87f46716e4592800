package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/metrics"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  apiResponse{data=loginResponse}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	tkn, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, success("Login successful", loginResponse{
		User:  toLoginUser(user),
		Token: tkn,
	}))
}

// VerifyToken validates the bearer token in the Authorization header and
// returns the subject's fresh profile together with the decoded claims.
//
// @Summary      Verify a bearer token
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  true  "Bearer token"
// @Success      200            {object}  apiResponse{data=verifyTokenResponse}
// @Failure      401            {object}  errorResponse
// @Router       /auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	raw := strings.TrimPrefix(authHeader, "Bearer ")
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, fail("No token provided"))
	}

	claims, user, err := h.authService.VerifyToken(c.Request().Context(), raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success("Token is valid", verifyTokenResponse{
		User:      toProfile(user),
		TokenData: claims,
	}))
}

// Profile returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse{data=profileResponse}
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success("Profile retrieved successfully", toProfile(user)))
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy and the token dies at expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, success("Logged out successfully", nil))
}

// ListUsers returns every identity, including inactive ones.
//
// @Summary      List all users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse{data=[]profileResponse}
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Users retrieved successfully", toProfiles(users)))
}
