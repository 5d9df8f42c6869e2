package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
	"github.com/MikeMC777/dryfruits-storefront/internal/review"
)

type displayNamer interface {
	DisplayName(ctx context.Context, userID string) string
}

// listReviewsHandler godoc
// @Summary      List reviews of a product
// @Tags         reviews
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {array}   review.Review
// @Failure      500  {object}  prod.HTTPError
// @Router       /reviews/{productId} [get]
func listReviewsHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListByProduct(c.Request.Context(), c.Param("productId"))
		if err != nil {
			httpx.Log(c).WithError(err).Error("[reviews] list")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createReviewHandler godoc
// @Summary      Post a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  review.CreateRequest  true  "Review"
// @Success      201  {object}  review.Review
// @Failure      400  {object}  prod.HTTPError
// @Failure      401  {object}  prod.HTTPError
// @Failure      500  {object}  prod.HTTPError
// @Router       /reviews [post]
func createReviewHandler(repo review.Repository, names displayNamer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in review.CreateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "Invalid request body."})
			return
		}
		uid := httpx.UserID(c)
		rv, err := review.New(in, uid, names.DisplayName(c.Request.Context(), uid))
		if err != nil {
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: err.Error()})
			return
		}

		err = repo.Create(c.Request.Context(), rv)
		switch {
		case errors.Is(err, review.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, prod.HTTPError{Error: "Invalid Product ID."})
		case err != nil:
			httpx.Log(c).WithError(err).Error("[reviews] create")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Could not save review to the database."})
		default:
			c.JSON(http.StatusCreated, rv)
		}
	}
}
