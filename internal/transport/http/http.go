package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/handler"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsOrigins := strings.Split(cfg.ApiServer.AllowedOrigins, ";")
	r.Use(cors.New(
		cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
			AllowHeaders: []string{
				"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
				"X-CSRF-Token", "Authorization", "X-Requested-With", "X-Access-Token",
			},
			AllowCredentials: true,
		},
	))
}

// Monitoring carries the observability pieces shared with the background jobs.
type Monitoring struct {
	Registry         *prometheus.Registry
	HTTPMetrics      *monitoring.HTTPMetrics
	JobStatusManager *monitoring.JobStatusManager
}

func NewHttpServer(appConfig *config.AppConfig, logger *logger.Logger, services handler.Services, db *gorm.DB, mon Monitoring) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		gin.Recovery(),
	)
	if mon.HTTPMetrics != nil {
		r.Use(monitoring.HTTPMetricsMiddleware(mon.HTTPMetrics))
	}
	setupCORS(r, appConfig)

	h := handler.NewWithMonitoring(appConfig, logger, services, db, mon.Registry, mon.JobStatusManager)

	// use ginSwagger middleware to serve the API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", h.MetricsHandler.Handler())
	r.GET("/healthz", h.HealthHandler.Basic)

	// load api
	loadV1Routes(r, h)

	return r
}
