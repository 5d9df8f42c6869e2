package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"

	"github.com/MikeMC777/dryfruits-storefront/internal/checkout"
	"github.com/MikeMC777/dryfruits-storefront/internal/config"
	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
	"github.com/MikeMC777/dryfruits-storefront/internal/db"
	"github.com/MikeMC777/dryfruits-storefront/internal/events"
	"github.com/MikeMC777/dryfruits-storefront/internal/health"
	ord "github.com/MikeMC777/dryfruits-storefront/internal/order"
	"github.com/MikeMC777/dryfruits-storefront/internal/payment"
	prod "github.com/MikeMC777/dryfruits-storefront/internal/product"
	"github.com/MikeMC777/dryfruits-storefront/internal/review"
	"github.com/MikeMC777/dryfruits-storefront/internal/user"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

// @title        Dry Fruits Storefront API
// @version      1.0
// @description  Catalog, coupons, checkout and payment callbacks for the storefront.
// @BasePath     /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("[main] invalid configuration")
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := db.Migrate(cfg.PostgresDSN); err != nil {
			log.WithError(err).Fatal("[main] migrations failed")
		}
	}
	pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		log.WithError(err).Fatal("[main] database unavailable")
	}
	defer pool.Close()

	var products prod.Repository = prod.NewPGRepo(pool)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("[main] redis unreachable, cache will fall back to postgres")
		}
		products = prod.NewCachedRepo(products, rdb, cfg.ProductCacheTTL)
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaOrderTopic, cfg.KafkaBrokers...)
	}
	defer publisher.Close()

	coupons := coupon.NewValidator(coupon.NewPGRepo(pool))
	orders := ord.NewPGRepo(pool)
	accounts := user.NewService(user.NewPGRepo(pool), cfg.SessionTTL)
	svc := checkout.NewService(
		products,
		coupons,
		orders,
		payment.NewClient(cfg.Payment),
		payment.NewSigner(cfg.Payment.SaltKey, cfg.Payment.SaltIndex),
		publisher,
		checkout.Options{PublicBaseURL: cfg.PublicBaseURL, AllowMock: cfg.Payment.AllowMock},
	)

	checker := health.NewChecker(pool)
	go checker.Run(ctx, 10*time.Second)

	grpcSrv := grpc.NewServer()
	checker.Register(grpcSrv)
	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		log.WithError(err).Fatal("[main] grpc health listen")
	}
	go func() {
		log.WithField("addr", cfg.GRPCHealthAddr).Info("[main] grpc health listening")
		if err := grpcSrv.Serve(lis); err != nil {
			log.WithError(err).Error("[main] grpc health stopped")
		}
	}()

	router := newRouter(deps{
		products: products,
		coupons:  coupons,
		orders:   orders,
		reviews:  review.NewPGRepo(pool),
		accounts: accounts,
		checkout: svc,
		healthy:  checker.Healthy,
	})
	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(handler, "storefront"),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("[main] storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("[main] http server failed")
		}
	}()

	<-ctx.Done()
	log.Info("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[main] http shutdown")
	}
	grpcSrv.GracefulStop()
}
