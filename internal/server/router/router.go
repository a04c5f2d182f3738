package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(crops *handlers.CropHandler, weather *handlers.WeatherHandler, info *handlers.InfoHandler, profiles *handlers.ProfileHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/crops", crops.List)
		api.POST("/crops", crops.Create)
		api.GET("/crops/active", crops.ActiveView)
		api.POST("/crops/view/list", crops.ShowList)
		api.POST("/crops/:id/open", crops.Open)
		api.DELETE("/crops/:id", crops.Delete)
		api.POST("/crops/:id/transactions", crops.SaveTransaction)
		api.DELETE("/crops/:id/expenses/:index", crops.DeleteExpense)
		api.POST("/crops/:id/report", crops.ExportReport)
		api.POST("/crops/:id/report/sheet", crops.ExportReportToSheet)

		api.GET("/weather", weather.Bulletin)

		api.GET("/schemes", info.Schemes)
		api.GET("/tips", info.Tips)
		api.GET("/faqs", info.FAQs)
		api.GET("/contact", info.Contact)

		api.GET("/profile/:uid", profiles.Get)
		api.PUT("/profile/:uid", profiles.Update)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
