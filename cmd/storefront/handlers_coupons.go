package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
)

// validateCouponHandler godoc
// @Summary      Validate a coupon
// @Description  Advisory check; checkout validates again against catalog prices.
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        body  body  coupon.ValidateRequest  true  "Code and cart subtotal in paise"
// @Success      200  {object}  coupon.ValidateResponse
// @Failure      400  {object}  coupon.ValidateResponse
// @Failure      404  {object}  coupon.ValidateResponse
// @Failure      500  {object}  coupon.ValidateResponse
// @Router       /coupons/validate [post]
func validateCouponHandler(v *coupon.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in coupon.ValidateRequest
		if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Code) == "" {
			c.JSON(http.StatusBadRequest, coupon.ValidateResponse{Message: "Coupon code is required."})
			return
		}

		cp, err := v.Validate(c.Request.Context(), in.Code, in.Subtotal)
		var rej *coupon.RejectionError
		switch {
		case errors.As(err, &rej):
			status := http.StatusBadRequest
			if errors.Is(err, coupon.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, coupon.ValidateResponse{Message: rej.Message})
		case err != nil:
			httpx.Log(c).WithError(err).Error("[coupon] validate")
			c.JSON(http.StatusInternalServerError, coupon.ValidateResponse{Message: "An internal error occurred."})
		default:
			c.JSON(http.StatusOK, coupon.ValidateResponse{Success: true, Coupon: cp})
		}
	}
}
