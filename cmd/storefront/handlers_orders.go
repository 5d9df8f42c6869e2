package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
	ord "github.com/MikeMC777/dryfruits-storefront/internal/order"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
)

// getOrderHandler godoc
// @Summary      Get one of my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path  string  true  "Order ID"
// @Success      200  {object}  ord.Details
// @Failure      401  {object}  prod.HTTPError
// @Failure      404  {object}  prod.HTTPError
// @Failure      500  {object}  prod.HTTPError
// @Router       /orders/{orderId} [get]
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := repo.GetForUser(c.Request.Context(), c.Param("orderId"), httpx.UserID(c))
		if errors.Is(err, ord.ErrNotFound) {
			c.JSON(http.StatusNotFound, prod.HTTPError{Error: "Order not found"})
			return
		}
		if err != nil {
			httpx.Log(c).WithError(err).Error("[orders] get")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Internal Server Error"})
			return
		}
		if items == nil {
			items = []ord.Item{}
		}
		c.JSON(http.StatusOK, ord.Details{Order: *o, Items: items})
	}
}

// listOrdersHandler godoc
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (default 20, max 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  ord.ListResponse
// @Failure      401  {object}  prod.HTTPError
// @Failure      500  {object}  prod.HTTPError
// @Router       /orders [get]
func listOrdersHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		if offset < 0 {
			offset = 0
		}
		out, err := repo.ListByUser(c.Request.Context(), httpx.UserID(c), limit, offset)
		if err != nil {
			httpx.Log(c).WithError(err).Error("[orders] list")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Internal Server Error"})
			return
		}
		if out == nil {
			out = []ord.Order{}
		}
		c.JSON(http.StatusOK, ord.ListResponse{Limit: limit, Offset: offset, Orders: out})
	}
}
