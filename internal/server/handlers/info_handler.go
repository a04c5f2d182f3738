package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/service/content"
	"github.com/kisanseva/kisanseva/internal/service/schemes"
)

// InfoHandler serves scheme listings and the static advisory content.
type InfoHandler struct {
	schemeSvc *schemes.Service
	logger    *zap.Logger
}

// NewInfoHandler constructs the HTTP handler adapter.
func NewInfoHandler(schemeSvc *schemes.Service, logger *zap.Logger) *InfoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InfoHandler{schemeSvc: schemeSvc, logger: logger}
}

// Schemes lists government schemes, falling back to the bundled set when the
// cloud collection has nothing.
func (h *InfoHandler) Schemes(c *gin.Context) {
	c.JSON(http.StatusOK, h.schemeSvc.List(c.Request.Context()))
}

// Tips returns the farming tips.
func (h *InfoHandler) Tips(c *gin.Context) {
	c.JSON(http.StatusOK, content.Tips())
}

// FAQs returns the help-center questions.
func (h *InfoHandler) FAQs(c *gin.Context) {
	c.JSON(http.StatusOK, content.FAQs())
}

// Contact returns the support contact block.
func (h *InfoHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, content.Contact())
}
