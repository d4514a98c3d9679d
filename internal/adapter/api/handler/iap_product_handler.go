package handler

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/usecase"
	"assetdoor/pkg/response"
	"assetdoor/pkg/utils"
)

type IapProductHandler struct {
	iapProductUseCase *usecase.IapProductUseCase
	iapSyncUseCase    *usecase.IapSyncUseCase
}

func NewIapProductHandler(iapProductUseCase *usecase.IapProductUseCase, iapSyncUseCase *usecase.IapSyncUseCase) *IapProductHandler {
	return &IapProductHandler{
		iapProductUseCase: iapProductUseCase,
		iapSyncUseCase:    iapSyncUseCase,
	}
}

func (h *IapProductHandler) ListIapProducts(c echo.Context) error {
	platform := c.QueryParam("platform")
	params := utils.GetCursorParams(c)

	items, hasMore, err := h.iapProductUseCase.ListIapProducts(
		c.Request().Context(),
		platform,
		params.PageSize,
		params.Cursor,
	)
	if err != nil {
		return response.Error(c, err)
	}

	nextCursor := ""
	if hasMore && len(items) > 0 {
		nextCursor = items[len(items)-1].SKU
	}

	return response.CursorPaginated(c, items, hasMore, nextCursor)
}

func (h *IapProductHandler) GetIapProduct(c echo.Context) error {
	sku := c.Param("sku")
	item, err := h.iapProductUseCase.GetIapProductBySKU(c.Request().Context(), sku)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *IapProductHandler) ListLinkedIapProducts(c echo.Context) error {
	platform := c.QueryParam("platform")

	items, err := h.iapProductUseCase.ListLinkedIapProducts(c.Request().Context(), platform)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

// TriggerSync runs one reconciliation pass synchronously and reports its
// counters. The scheduled job runs the same code path.
func (h *IapProductHandler) TriggerSync(c echo.Context) error {
	result, err := h.iapSyncUseCase.SyncStoreProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *IapProductHandler) GetSyncStatus(c echo.Context) error {
	status, err := h.iapSyncUseCase.GetSyncStatus(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}
