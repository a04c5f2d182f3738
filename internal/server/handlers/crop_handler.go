package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/service/ledger"
	"github.com/kisanseva/kisanseva/internal/service/report"
)

// CropHandler exposes the crop ledger over HTTP.
type CropHandler struct {
	ledgerSvc     *ledger.Service
	reportSvc     *report.Service
	sheetExporter *report.SheetExporter
	logger        *zap.Logger
}

// NewCropHandler constructs the HTTP handler adapter for the ledger. The
// sheet exporter may be nil when the spreadsheet sink is not configured.
func NewCropHandler(ledgerSvc *ledger.Service, reportSvc *report.Service, sheetExporter *report.SheetExporter, logger *zap.Logger) *CropHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CropHandler{
		ledgerSvc:     ledgerSvc,
		reportSvc:     reportSvc,
		sheetExporter: sheetExporter,
		logger:        logger,
	}
}

// cropView is a crop plus the metrics every presentation site derives the
// same way.
type cropView struct {
	models.Crop
	TotalExpenses float64 `json:"totalExpenses"`
	Profit        float64 `json:"profit"`
	ProfitLabel   string  `json:"profitLabel"`
}

func newCropView(crop models.Crop) cropView {
	profit := crop.Profit()
	return cropView{
		Crop:          crop,
		TotalExpenses: crop.TotalExpenses(),
		Profit:        profit,
		ProfitLabel:   models.ProfitLabel(profit),
	}
}

// List returns the current snapshot with derived metrics per crop.
func (h *CropHandler) List(c *gin.Context) {
	crops := h.ledgerSvc.Crops()

	views := make([]cropView, 0, len(crops))
	for _, crop := range crops {
		views = append(views, newCropView(crop))
	}
	c.JSON(http.StatusOK, views)
}

// Create adds a new crop record with an empty ledger.
func (h *CropHandler) Create(c *gin.Context) {
	var input ledger.CropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid crop payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.ledgerSvc.AddCrop(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrEmptyCropName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "crop name is required"})
			return
		}
		h.logger.Error("failed to create crop", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to save crop"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Delete removes a crop record. Deleting an already-gone crop succeeds.
func (h *CropHandler) Delete(c *gin.Context) {
	if err := h.ledgerSvc.DeleteCrop(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete crop", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to delete crop"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Open switches the ledger to the detail view of one crop.
func (h *CropHandler) Open(c *gin.Context) {
	crop, ok := h.ledgerSvc.OpenCrop(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}
	c.JSON(http.StatusOK, newCropView(crop))
}

// ShowList switches the ledger back to the list view.
func (h *CropHandler) ShowList(c *gin.Context) {
	h.ledgerSvc.ShowList()
	c.JSON(http.StatusOK, gin.H{"view": string(ledger.ViewList)})
}

// ActiveView reports which view is current and, in detail mode, the open
// crop.
func (h *CropHandler) ActiveView(c *gin.Context) {
	view, crop, ok := h.ledgerSvc.CurrentView()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"view": string(view)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": string(view), "crop": newCropView(crop)})
}

// transactionRequest is the expense/income form payload. EditIndex is absent
// for a new entry.
type transactionRequest struct {
	Expense   string `json:"expense"`
	Income    string `json:"income"`
	Bill      string `json:"bill"`
	EditIndex *int   `json:"editIndex"`
}

// SaveTransaction applies one expense/income submission to a crop.
func (h *CropHandler) SaveTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	txn := ledger.Transaction{
		CropID:    c.Param("id"),
		Expense:   req.Expense,
		Income:    req.Income,
		Bill:      req.Bill,
		EditIndex: -1,
	}
	if req.EditIndex != nil {
		txn.EditIndex = *req.EditIndex
	}

	if err := h.ledgerSvc.SaveTransaction(c.Request.Context(), txn); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "expense amount must be a positive number"})
		case errors.Is(err, models.ErrIndexOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "expense index out of range"})
		default:
			h.logger.Error("failed to save transaction", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "unable to save transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// DeleteExpense removes the expense at a position within a crop's ledger.
func (h *CropHandler) DeleteExpense(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense index"})
		return
	}

	if err := h.ledgerSvc.DeleteExpense(c.Request.Context(), c.Param("id"), index); err != nil {
		if errors.Is(err, models.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expense index out of range"})
			return
		}
		h.logger.Error("failed to delete expense", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ExportReport renders the crop report document and returns its file path.
func (h *CropHandler) ExportReport(c *gin.Context) {
	crop, ok := h.ledgerSvc.Crop(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}

	path, err := h.reportSvc.Export(c.Request.Context(), crop)
	if err != nil {
		h.logger.Error("failed to export crop report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to export report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": path})
}

// ExportReportToSheet appends the crop report rows to the configured
// spreadsheet.
func (h *CropHandler) ExportReportToSheet(c *gin.Context) {
	if h.sheetExporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "spreadsheet export is not configured"})
		return
	}

	crop, ok := h.ledgerSvc.Crop(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}

	if err := h.sheetExporter.Export(c.Request.Context(), crop); err != nil {
		h.logger.Error("failed to export crop report to sheet", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "exported"})
}
