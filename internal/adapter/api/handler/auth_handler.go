package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"assetdoor/internal/usecase"
	"assetdoor/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// SyncProfile upserts the caller's user document from their Firebase
// identity. The mobile and admin clients call this right after sign-in.
func (h *AuthHandler) SyncProfile(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	user, err := h.authUseCase.SyncProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	isAdmin, err := h.authUseCase.CheckAdmin(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"uid":      uid,
		"is_admin": isAdmin,
	})
}
