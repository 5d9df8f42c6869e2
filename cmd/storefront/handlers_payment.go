package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/dryfruits-storefront/internal/checkout"
	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
)

type checkoutService interface {
	Checkout(ctx context.Context, userID string, req checkout.Request) (*checkout.Result, error)
	HandleCallback(ctx context.Context, encoded, xVerify string) error
}

func checkoutFailure(c *gin.Context, status int, msg string) {
	c.JSON(status, checkout.ErrorResponse{Success: false, Error: msg})
}

// paymentHandler godoc
// @Summary      Check out and initiate payment
// @Description  Re-prices the cart, re-validates the coupon, records the order and returns the payer redirect.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  checkout.Request  true  "Shipping details and cart"
// @Success      200  {object}  checkout.Response
// @Failure      400  {object}  checkout.ErrorResponse
// @Failure      401  {object}  checkout.ErrorResponse
// @Failure      404  {object}  checkout.ErrorResponse
// @Failure      500  {object}  checkout.ErrorResponse
// @Failure      502  {object}  checkout.ErrorResponse
// @Router       /payment [post]
func paymentHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			checkoutFailure(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		res, err := svc.Checkout(c.Request.Context(), httpx.UserID(c), req)
		switch {
		case err == nil:
			httpx.Log(c).WithField("order_id", res.OrderID).Info("[payment] checkout accepted")
			c.JSON(http.StatusOK, checkout.Response{Success: true, RedirectURL: res.RedirectURL})
		case errors.Is(err, checkout.ErrEmptyCart):
			checkoutFailure(c, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, checkout.ErrInvalidRequest):
			checkoutFailure(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, checkout.ErrMockPaymentDisabled):
			checkoutFailure(c, http.StatusBadRequest, "Mock payments are not available")
		case errors.Is(err, checkout.ErrProductUnavailable):
			checkoutFailure(c, http.StatusBadRequest, "A product in your cart is out of stock")
		case errors.Is(err, checkout.ErrProductNotFound):
			checkoutFailure(c, http.StatusNotFound, "A product in your cart no longer exists")
		case errors.Is(err, checkout.ErrGateway):
			checkoutFailure(c, http.StatusBadGateway, "Could not initiate payment")
		default:
			httpx.Log(c).WithError(err).Error("[payment] checkout failed")
			checkoutFailure(c, http.StatusInternalServerError, "Failed to save order")
		}
	}
}

// paymentCallbackHandler godoc
// @Summary      Gateway callback
// @Description  Server-to-server notification. Always acknowledged with 200; rejected callbacks change nothing.
// @Tags         payment
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        response  formData  string  true  "base64 JSON payload"
// @Param        X-VERIFY  header    string  true  "Payload signature"
// @Success      200  {object}  checkout.CallbackAck
// @Router       /payment/callback [post]
func paymentCallbackHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.HandleCallback(c.Request.Context(), c.PostForm("response"), c.GetHeader("X-VERIFY"))
		if err != nil {
			httpx.Log(c).WithError(err).Warn("[payment] callback not applied")
		}
		c.JSON(http.StatusOK, checkout.CallbackAck{Status: "success"})
	}
}
