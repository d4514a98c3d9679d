package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"assetdoor/internal/usecase"
	"assetdoor/pkg/response"
	"assetdoor/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description"`
	CategoryID          string   `json:"category_id" validate:"required"`
	Tags                []string `json:"tags"`
	IsFree              bool     `json:"is_free"`
	IapProductIDAndroid string   `json:"iap_product_id_android"`
	IapProductIDIOS     string   `json:"iap_product_id_ios"`
	IsActive            bool     `json:"is_active"`
	IsFeatured          bool     `json:"is_featured"`
	ImageURL            string   `json:"image_url" validate:"omitempty,url"`
	ImagePath           string   `json:"image_path"`
	FileURL             string   `json:"file_url" validate:"omitempty,url"`
	FilePath            string   `json:"file_path"`
	FileName            string   `json:"file_name"`
	FileSize            int64    `json:"file_size"`
	FileType            string   `json:"file_type"`
}

func (r *productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Title:               r.Title,
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		Tags:                r.Tags,
		IsFree:              r.IsFree,
		IapProductIDAndroid: r.IapProductIDAndroid,
		IapProductIDIOS:     r.IapProductIDIOS,
		IsActive:            r.IsActive,
		IsFeatured:          r.IsFeatured,
		ImageURL:            r.ImageURL,
		ImagePath:           r.ImagePath,
		FileURL:             r.FileURL,
		FilePath:            r.FilePath,
		FileName:            r.FileName,
		FileSize:            r.FileSize,
		FileType:            r.FileType,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	categoryID := c.QueryParam("category")
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	params := utils.GetCursorParams(c)

	products, hasMore, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		categoryID,
		activeOnly,
		params.PageSize,
		params.Cursor,
	)
	if err != nil {
		return response.Error(c, err)
	}

	nextCursor := ""
	if hasMore && len(products) > 0 {
		nextCursor = products[len(products)-1].ID
	}

	return response.CursorPaginated(c, products, hasMore, nextCursor)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	products, err := h.productUseCase.SearchProducts(c.Request().Context(), query, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}
