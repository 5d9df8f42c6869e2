package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
)

func parseOptionalInt(c *gin.Context, key string) (*int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}

// listProductsHandler godoc
// @Summary      List products
// @Description  Catalog page of 12, newest first. Prices are in paise.
// @Tags         products
// @Produce      json
// @Param        type      query  string  false  "Category, or all"
// @Param        minPrice  query  int     false  "Minimum price (paise)"
// @Param        maxPrice  query  int     false  "Maximum price (paise)"
// @Param        inStock   query  bool    false  "Only products in stock"
// @Param        page      query  int     false  "Page number, from 1"
// @Success      200  {object}  prod.ListResponse
// @Failure      400  {object}  prod.HTTPError
// @Failure      500  {object}  prod.HTTPError
// @Router       /products [get]
func listProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		minPrice, ok := parseOptionalInt(c, "minPrice")
		if !ok {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "minPrice must be a non-negative integer"})
			return
		}
		maxPrice, ok := parseOptionalInt(c, "maxPrice")
		if !ok {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "maxPrice must be a non-negative integer"})
			return
		}
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		q := prod.Query{
			Category: c.Query("type"),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			InStock:  c.Query("inStock") == "true",
			Page:     page,
		}

		items, total, err := repo.List(c.Request.Context(), q)
		if err != nil {
			httpx.Log(c).WithError(err).Error("[catalog] list products")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Error fetching products"})
			return
		}
		c.JSON(http.StatusOK, prod.ListResponse{
			Products:    items,
			CurrentPage: page,
			TotalPages:  prod.TotalPages(total),
		})
	}
}

// getProductHandler godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {object}  prod.Product
// @Failure      404  {object}  prod.HTTPError
// @Failure      500  {object}  prod.HTTPError
// @Router       /product/{productId} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("productId"))
		if errors.Is(err, prod.ErrNotFound) {
			c.JSON(http.StatusNotFound, prod.HTTPError{Error: "Product not found"})
			return
		}
		if err != nil {
			httpx.Log(c).WithError(err).Error("[catalog] get product")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
