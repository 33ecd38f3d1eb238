package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the auth flow over HTTP.
type AuthHandler struct {
	service *UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles the registration form.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.service.Register(req); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":  "Account registered, verification pending",
		"redirect": "/verify-email",
	})
}

// Login handles a login attempt. All failures share one response.
func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	acc, err := h.service.Login(cred)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": ErrInvalidCredentials.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Logged in",
		"email":    acc.Email,
		"role":     acc.Role,
		"redirect": "/profile",
	})
}

// SimulateVerify marks the pending registration as verified, standing in for
// the emailed link.
func (h *AuthHandler) SimulateVerify(c echo.Context) error {
	email := h.service.PendingEmail()
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Register first"})
	}
	if err := h.service.Verify(email); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Account not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Email verified",
		"redirect": "/login",
	})
}

// VerifyEmail verifies through a signed token from the emailed link.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.VerifyToken(req.Token); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Email verified successfully"})
}

// UpdateProfile saves the edit-profile form for the session account.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.UpdateProfile(req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Profile updated"})
}

// ListAccounts returns the accounts table for the admin page.
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.repo.All())
}

// CreateAccount handles the admin account form, updating when an edit is in
// progress.
func (h *AuthHandler) CreateAccount(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.SubmitAccount(req); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account saved"})
}

// EditAccount loads an account into the admin edit form.
func (h *AuthHandler) EditAccount(c echo.Context) error {
	acc, err := h.service.BeginEditAccount(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Account not found"})
	}
	return c.JSON(http.StatusOK, acc)
}

// CancelEditAccount clears the admin edit form.
func (h *AuthHandler) CancelEditAccount(c echo.Context) error {
	h.service.CancelEdit()
	return c.JSON(http.StatusOK, map[string]string{"message": "Edit cancelled"})
}

// ResetPassword handles the admin password reset form.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.ResetPassword(c.Param("id"), req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset"})
}

// DeleteAccount removes an account, never the one backing the session.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	if err := h.service.DeleteAccount(c.Param("id")); err != nil {
		if errors.Is(err, ErrSelfDelete) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Account not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted"})
}
