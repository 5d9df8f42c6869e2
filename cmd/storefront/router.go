package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/dryfruits-storefront/docs"
	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
	"github.com/MikeMC777/dryfruits-storefront/internal/httpx"
	"github.com/MikeMC777/dryfruits-storefront/internal/metrics"
	ord "github.com/MikeMC777/dryfruits-storefront/internal/order"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
	"github.com/MikeMC777/dryfruits-storefront/internal/review"
)

type deps struct {
	products prod.Repository
	coupons  *coupon.Validator
	orders   ord.Repository
	reviews  review.Repository
	accounts accounts
	checkout checkoutService
	// healthy reports database reachability; nil means always healthy.
	healthy func() bool
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery(), metrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		if d.healthy != nil && !d.healthy() {
			c.String(http.StatusServiceUnavailable, "unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireUser := httpx.RequireUser(d.accounts)

	api := r.Group("/api")
	{
		api.POST("/auth/register", registerHandler(d.accounts))
		api.POST("/auth/login", loginHandler(d.accounts))
		api.POST("/auth/logout", requireUser, logoutHandler(d.accounts))

		api.GET("/products", listProductsHandler(d.products))
		api.GET("/product/:productId", getProductHandler(d.products))

		api.GET("/reviews/:productId", listReviewsHandler(d.reviews))
		api.POST("/reviews", requireUser, createReviewHandler(d.reviews, d.accounts))

		api.POST("/coupons/validate", validateCouponHandler(d.coupons))

		api.POST("/payment", requireUser, paymentHandler(d.checkout))
		api.POST("/payment/callback", paymentCallbackHandler(d.checkout))

		api.GET("/orders", requireUser, listOrdersHandler(d.orders))
		api.GET("/orders/:orderId", requireUser, getOrderHandler(d.orders))
	}
	return r
}
