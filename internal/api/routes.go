package api

import (
	"fmt"
	"net/http"

	"github.com/alperbenzer/transfer-process/internal/auth"
	"github.com/alperbenzer/transfer-process/internal/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/alperbenzer/transfer-process/docs" // 导入生成的 docs 包
)

// SetupRoutes 配置路由
func SetupRoutes(cfg *config.Config, db *gorm.DB, verifier *auth.KeyVerifier, callController *CallController) *gin.Engine {
	if config.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(I18nMiddleware())
	router.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(SecurityHeadersMiddleware())
	router.Use(ErrorHandlerMiddleware())

	// 健康检查
	healthController := NewHealthController(db)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// Swagger UI 路由
	swaggerHost := cfg.Server.Host
	if swaggerHost == "0.0.0.0" {
		swaggerHost = "localhost"
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(fmt.Sprintf("http://%s:%d/swagger/doc.json", swaggerHost, cfg.Server.Port)),
	))

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 呼叫转移路由（transfer key）
		transfer := v1.Group("/transfer", APIKeyMiddleware(verifier, auth.CapabilityTransfer))
		{
			transfer.POST("", callController.Transfer)
		}

		// 呼叫管理路由（manage key）
		calls := v1.Group("/calls", APIKeyMiddleware(verifier, auth.CapabilityManage))
		{
			calls.GET("", callController.List)
			calls.PATCH("/:id", callController.Update)
		}
	}

	// 自定义 NoRoute 处理器,返回 JSON 格式的 404
	router.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}
