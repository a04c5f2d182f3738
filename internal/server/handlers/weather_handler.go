package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/service/weather"
)

// WeatherHandler serves the weather bulletin endpoint.
type WeatherHandler struct {
	svc    *weather.Service
	logger *zap.Logger
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(svc *weather.Service, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{svc: svc, logger: logger}
}

// Bulletin returns current conditions, a three-day forecast and matching
// alerts for the given coordinates.
func (h *WeatherHandler) Bulletin(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}

	bulletin, err := h.svc.Bulletin(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.Error("failed to build weather bulletin", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, bulletin)
}
