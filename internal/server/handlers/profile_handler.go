package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
)

// ProfileHandler reads and updates farmer profiles. The uid comes from the
// external auth provider; this service never authenticates.
type ProfileHandler struct {
	store  docstore.ProfileStore
	logger *zap.Logger
}

// NewProfileHandler constructs the HTTP handler adapter.
func NewProfileHandler(store docstore.ProfileStore, logger *zap.Logger) *ProfileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileHandler{store: store, logger: logger}
}

// Get returns the stored profile for a uid.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, docstore.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update creates or replaces the profile for a uid.
func (h *ProfileHandler) Update(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile.UID = c.Param("uid")

	if err := h.store.UpsertProfile(c.Request.Context(), profile); err != nil {
		h.logger.Error("failed to save profile", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
