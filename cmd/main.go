package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/auth"
	"github.com/invenhub/pos-service/internal/billing"
	"github.com/invenhub/pos-service/internal/bridge"
	"github.com/invenhub/pos-service/internal/catalog"
	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/events"
	"github.com/invenhub/pos-service/internal/fixtures"
	"github.com/invenhub/pos-service/internal/handler"
	"github.com/invenhub/pos-service/internal/ledger"
	"github.com/invenhub/pos-service/internal/service"
	"github.com/invenhub/pos-service/pkg/config"
	"github.com/invenhub/pos-service/pkg/middleware"
	pkgtls "github.com/invenhub/pos-service/pkg/tls"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Persistence bridge
	store, err := newStore(cfg, logger)
	if err != nil {
		log.Fatal("Failed to initialize persistence bridge:", err)
	}
	if store != nil {
		defer store.Close()
	}

	// Seed the ledger from the bridge when it has data, fixtures otherwise
	seed := fixtures.Sales()
	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		loaded, err := store.LoadSales(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to load persisted sales:", err)
		}
		if len(loaded) > 0 {
			seed = loaded
		} else {
			mirrorSeed(store, seed, logger)
		}
	}
	salesLedger := ledger.New(seed)
	productCatalog := catalog.New(fixtures.Products())

	// Event producer
	var producer *events.KafkaProducer
	if cfg.KafkaBrokers != "" {
		producer = events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
	}

	// Services and handlers
	salesService := service.NewSalesService(salesLedger, store, producer, logger)
	analyticsService := service.NewAnalyticsService(salesLedger, logger)
	billingService := billing.New(productCatalog, salesService, cfg.TaxRate, logger)
	authService := auth.New(fixtures.Users(), cfg.JWTSecret, logger)

	salesHandler := handler.NewSalesHandler(salesService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)
	productHandler := handler.NewProductHandler(productCatalog, logger)
	billingHandler := handler.NewBillingHandler(billingService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	reportHandler := handler.NewReportHandler(salesService, analyticsService, logger)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/register", authHandler.Register)
		v1.GET("/auth/verify", authHandler.Verify)

		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})

		protected := v1.Group("")
		if cfg.AuthRequired {
			protected.Use(middleware.Auth(cfg.JWTSecret))
		}

		protected.GET("/products", productHandler.ListProducts)
		protected.GET("/products/:id", productHandler.GetProduct)
		protected.GET("/products/barcode/:code", productHandler.GetProductByBarcode)
		protected.POST("/products", productHandler.CreateProduct)

		protected.GET("/sales", salesHandler.ListSales)
		protected.GET("/sales/:id", salesHandler.GetSale)
		protected.POST("/sales", salesHandler.CreateSale)
		protected.PATCH("/sales/:id", salesHandler.UpdateSale)
		protected.DELETE("/sales/:id", salesHandler.DeleteSale)

		protected.GET("/analytics/summary", analyticsHandler.Summary)
		protected.GET("/analytics/channels", analyticsHandler.SalesByChannel)
		protected.GET("/analytics/categories", analyticsHandler.SalesByCategory)
		protected.GET("/analytics/payment-methods", analyticsHandler.SalesByPaymentMethod)
		protected.GET("/analytics/monthly", analyticsHandler.MonthlySales)
		protected.GET("/analytics/products", analyticsHandler.ProductPerformance)
		protected.GET("/analytics/low-stock", analyticsHandler.LowStockProducts)

		protected.GET("/bill", billingHandler.GetBill)
		protected.POST("/bill/items", billingHandler.AddItem)
		protected.DELETE("/bill/items/:productId", billingHandler.RemoveItem)
		protected.DELETE("/bill", billingHandler.ClearBill)
		protected.POST("/bill/checkout", billingHandler.Checkout)

		protected.GET("/reports/sales", reportHandler.SalesReport)
	}

	// Optional SPIRE mTLS
	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}
	defer pkgtls.Cleanup()

	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsConfig,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))
		var err error
		if tlsConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newStore(cfg *config.Config, logger *zap.Logger) (bridge.Store, error) {
	switch cfg.PersistenceMode {
	case "redis":
		return bridge.NewRedisStore(cfg.RedisAddr, logger)
	case "dynamo":
		client, err := bridge.NewDynamoClient(cfg.AWSRegion, cfg.DynamoEndpoint)
		if err != nil {
			return nil, err
		}
		return bridge.NewDynamoStore(client, cfg.SalesTableName, logger), nil
	default:
		logger.Info("Persistence bridge disabled")
		return nil, nil
	}
}

// mirrorSeed writes the fixture sales into an empty store so the next start
// loads the same state it served.
func mirrorSeed(store bridge.Store, seed []domain.Sale, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, sale := range seed {
		if err := store.PutSale(ctx, sale); err != nil {
			logger.Warn("Failed to mirror seed sale",
				zap.String("sale_id", sale.ID),
				zap.Error(err))
		}
	}
}
