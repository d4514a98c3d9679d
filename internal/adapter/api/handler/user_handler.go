package handler

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/usecase"
	"assetdoor/pkg/response"
	"assetdoor/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	params := utils.GetCursorParams(c)

	users, hasMore, err := h.userUseCase.ListUsers(c.Request().Context(), params.PageSize, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	nextCursor := ""
	if hasMore && len(users) > 0 {
		nextCursor = users[len(users)-1].ID
	}

	return response.CursorPaginated(c, users, hasMore, nextCursor)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	user, err := h.userUseCase.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUserPurchases(c echo.Context) error {
	id := c.Param("id")
	purchases, err := h.userUseCase.GetUserPurchases(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, purchases)
}

type updateUserRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetUserActive(c.Request().Context(), id, req.IsActive)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
