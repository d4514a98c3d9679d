package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"assetdoor/internal/domain/repository"
	"assetdoor/internal/usecase"
	"assetdoor/pkg/response"
	"assetdoor/pkg/utils"
)

type PurchaseHandler struct {
	purchaseUseCase *usecase.PurchaseUseCase
}

func NewPurchaseHandler(purchaseUseCase *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	params := utils.GetCursorParams(c)

	filter := repository.PurchaseFilter{
		UserID:    c.QueryParam("userId"),
		ProductID: c.QueryParam("productId"),
		Status:    c.QueryParam("status"),
	}
	filter.StartDate = parseDateParam(c.QueryParam("startDate"))
	filter.EndDate = parseDateParam(c.QueryParam("endDate"))

	purchases, hasMore, err := h.purchaseUseCase.ListPurchases(
		c.Request().Context(),
		filter,
		params.PageSize,
		params.Cursor,
	)
	if err != nil {
		return response.Error(c, err)
	}

	nextCursor := ""
	if hasMore && len(purchases) > 0 {
		nextCursor = purchases[len(purchases)-1].ID
	}

	return response.CursorPaginated(c, purchases, hasMore, nextCursor)
}

func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	id := c.Param("id")
	purchase, err := h.purchaseUseCase.GetPurchaseByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, purchase)
}

type updatePurchaseRequest struct {
	Status       string `json:"status" validate:"omitempty,oneof=completed pending refunded"`
	RefundReason string `json:"refund_reason"`
	AdminNotes   string `json:"admin_notes"`
}

func (h *PurchaseHandler) UpdatePurchase(c echo.Context) error {
	id := c.Param("id")

	var req updatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	purchase, err := h.purchaseUseCase.UpdatePurchase(c.Request().Context(), id, usecase.PurchaseUpdateInput{
		Status:       req.Status,
		RefundReason: req.RefundReason,
		AdminNotes:   req.AdminNotes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, purchase)
}

func (h *PurchaseHandler) GetPurchaseStats(c echo.Context) error {
	startDate := parseDateParam(c.QueryParam("startDate"))
	endDate := parseDateParam(c.QueryParam("endDate"))

	stats, err := h.purchaseUseCase.GetPurchaseStats(c.Request().Context(), startDate, endDate)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *PurchaseHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.purchaseUseCase.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func parseDateParam(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}

	return &t
}
