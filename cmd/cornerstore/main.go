// CornerStore 主程序
// 功能：提供门店收银记录服务，包括商品目录、收银员与订单的管理
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/cornerstore/internal/pos/application"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/internal/pos/infrastructure/messaging"
	"github.com/wyfcoding/cornerstore/internal/pos/infrastructure/persistence/mysql"
	httphandler "github.com/wyfcoding/cornerstore/internal/pos/interfaces/http"
	"github.com/wyfcoding/cornerstore/pkg/cache"
	"github.com/wyfcoding/cornerstore/pkg/config"
	"github.com/wyfcoding/cornerstore/pkg/db"
	"github.com/wyfcoding/cornerstore/pkg/logger"
	"github.com/wyfcoding/cornerstore/pkg/metrics"
	"github.com/wyfcoding/cornerstore/pkg/middleware"
	"github.com/wyfcoding/cornerstore/pkg/mq"
	"github.com/wyfcoding/cornerstore/pkg/ratelimit"
)

func main() {
	// 1. 加载配置
	var configPath string
	flag.StringVar(&configPath, "config", "configs/cornerstore/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	loggerCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}
	if err := logger.Init(loggerCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting CornerStore",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	// 金额字段序列化为 JSON 数字而非字符串
	decimal.MarshalJSONWithoutQuotes = true

	// 3. 初始化指标
	var metricsInstance *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsInstance = metrics.New(cfg.ServiceName)
		if err := metricsInstance.Register(); err != nil {
			logger.Fatal(ctx, "Failed to register metrics", "error", err)
		}
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics HTTP server", "error", err)
		}
	}

	// 4. 初始化数据库
	dbCfg := db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}
	database, err := db.Init(dbCfg, metricsInstance)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize database", "error", err)
	}
	defer database.Close()

	// 5. 迁移并写入种子数据
	if cfg.Database.Migrate {
		if err := mysql.Migrate(database.DB); err != nil {
			logger.Fatal(ctx, "Failed to migrate database", "error", err)
		}
		if err := mysql.Seed(ctx, database.DB); err != nil {
			logger.Fatal(ctx, "Failed to seed database", "error", err)
		}
	}

	// 6. 初始化 Redis 与限流器（可选）
	var rateLimiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		redisCache, err := cache.New(cache.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxPoolSize:  cfg.Redis.MaxPoolSize,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to initialize Redis", "error", err)
		}
		defer redisCache.Close()
		rateLimiter = ratelimit.NewRedisRateLimiter(redisCache.GetClient())
	}

	// 7. 初始化订单事件发布器（可选）
	var publisher domain.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to initialize Kafka producer", "error", err)
		}
		defer producer.Close()
		publisher = messaging.NewOrderEventPublisher(producer, cfg.Kafka.OrderTopic)
	}

	// 8. 初始化仓储
	productRepo := mysql.NewProductRepository(database.DB)
	cashierRepo := mysql.NewCashierRepository(database.DB)
	orderRepo := mysql.NewOrderRepository(database.DB)

	// 9. 初始化应用服务
	catalogService := application.NewCatalogService(productRepo, metricsInstance)
	cashierService := application.NewCashierService(cashierRepo)
	orderService := application.NewOrderService(orderRepo, productRepo, publisher, metricsInstance)

	// 10. 创建 HTTP 服务器
	httpServer := createHTTPServer(cfg, catalogService, cashierService, orderService, rateLimiter, metricsInstance)

	// 11. 启动 HTTP 服务器
	go func() {
		logger.Info(ctx, "Starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server error", "error", err)
		}
	}()

	// 12. 优雅关停
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "Shutting down CornerStore")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown error", "error", err)
	}

	logger.Info(ctx, "CornerStore stopped")
}

// createHTTPServer 创建 HTTP 服务器
func createHTTPServer(
	cfg *config.Config,
	catalogService *application.CatalogService,
	cashierService *application.CashierService,
	orderService *application.OrderService,
	rateLimiter ratelimit.RateLimiter,
	metricsInstance *metrics.Metrics,
) *http.Server {
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.GinLoggingMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	if metricsInstance != nil {
		router.Use(middleware.GinMetricsMiddleware(metricsInstance))
	}
	if rateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(rateLimiter, cfg.RateLimit))
	}

	httphandler.NewProductHandler(catalogService).RegisterRoutes(router)
	httphandler.NewCashierHandler(cashierService).RegisterRoutes(router)
	httphandler.NewOrderHandler(orderService).RegisterRoutes(router)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
}
