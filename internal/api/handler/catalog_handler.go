package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product browsing.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/products.
//
// @Summary      List products with optional filters
// @Tags         catalog
// @Produce      json
// @Param        search    query     string  false  "Case-insensitive substring match on product name"
// @Param        category  query     string  false  "Exact category, or Wszystkie for all"
// @Success      200       {object}  productListResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	items := h.catalog.List(ports.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	})

	return c.JSON(http.StatusOK, productListResponse{
		Items: items,
		Total: len(items),
	})
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a single product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, product)
}

// Categories handles GET /v1/products/categories.
//
// @Summary      List catalog categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /v1/products/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: h.catalog.Categories()})
}
