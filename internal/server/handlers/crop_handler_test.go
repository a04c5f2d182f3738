package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanseva/kisanseva/internal/repository/memory"
	"github.com/kisanseva/kisanseva/internal/server/handlers"
	"github.com/kisanseva/kisanseva/internal/server/router"
	"github.com/kisanseva/kisanseva/internal/service/ledger"
	"github.com/kisanseva/kisanseva/internal/service/report"
	"github.com/kisanseva/kisanseva/internal/service/schemes"
	"github.com/kisanseva/kisanseva/internal/service/weather"
	"github.com/kisanseva/kisanseva/pkg/clients/openweather"
)

type stubWeatherClient struct{}

func (stubWeatherClient) Current(context.Context, float64, float64) (*openweather.CurrentResponse, error) {
	return &openweather.CurrentResponse{}, nil
}

func (stubWeatherClient) Forecast(context.Context, float64, float64) (*openweather.ForecastResponse, error) {
	return &openweather.ForecastResponse{}, nil
}

type recordingExporter struct {
	ranges []string
	rows   [][]interface{}
}

func (r *recordingExporter) AppendRow(ctx context.Context, sheetRange string, values []interface{}) error {
	return r.AppendRows(ctx, sheetRange, [][]interface{}{values})
}

func (r *recordingExporter) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	r.ranges = append(r.ranges, sheetRange)
	r.rows = append(r.rows, rows...)
	return nil
}

type testAPI struct {
	engine    *gin.Engine
	ledgerSvc *ledger.Service
	store     *memory.Store
	exporter  *recordingExporter
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.New()
	ledgerSvc := ledger.NewService(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = ledgerSvc.Run(ctx) }()

	reportSvc := report.NewService(report.NewHTMLRenderer(t.TempDir()), nil)
	exporter := &recordingExporter{}
	sheetExporter := report.NewSheetExporter(exporter, "Reports!A:C", nil)

	weatherSvc := weather.NewService(stubWeatherClient{}, store, nil)
	schemeSvc := schemes.NewService(store, nil)

	engine := router.New(
		handlers.NewCropHandler(ledgerSvc, reportSvc, sheetExporter, nil),
		handlers.NewWeatherHandler(weatherSvc, nil),
		handlers.NewInfoHandler(schemeSvc, nil),
		handlers.NewProfileHandler(store, nil),
		nil,
	)

	return &testAPI{engine: engine, ledgerSvc: ledgerSvc, store: store, exporter: exporter}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

// createCrop adds a crop through the API and waits for the snapshot feed to
// deliver it.
func (a *testAPI) createCrop(t *testing.T, name string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/crops", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)

	require.Eventually(t, func() bool {
		_, ok := a.ledgerSvc.Crop(resp.ID)
		return ok
	}, time.Second, 5*time.Millisecond)

	return resp.ID
}

func TestCreateCrop(t *testing.T) {
	api := newTestAPI(t)

	id := api.createCrop(t, "Wheat")
	assert.NotEmpty(t, id)

	rec := api.do(t, http.MethodPost, "/api/crops", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCropsIncludesDerivedMetrics(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/transactions", gin.H{
		"expense": "250",
		"income":  "1000",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Eventually(t, func() bool {
		crop, ok := api.ledgerSvc.Crop(id)
		return ok && len(crop.Expenses) == 1
	}, time.Second, 5*time.Millisecond)

	rec = api.do(t, http.MethodGet, "/api/crops", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var crops []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crops))
	require.Len(t, crops, 1)
	assert.Equal(t, 250.0, crops[0]["totalExpenses"])
	assert.Equal(t, 750.0, crops[0]["profit"])
	assert.Equal(t, "Profit", crops[0]["profitLabel"])
}

func TestSaveTransactionErrors(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/transactions", gin.H{
		"expense": "not-a-number",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/crops/"+id+"/transactions", gin.H{
		"expense":   "100",
		"editIndex": 5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown crop is a silent success, matching the ledger contract.
	rec = api.do(t, http.MethodPost, "/api/crops/ghost/transactions", gin.H{
		"expense": "100",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteExpense(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/transactions", gin.H{"expense": "100"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Eventually(t, func() bool {
		crop, ok := api.ledgerSvc.Crop(id)
		return ok && len(crop.Expenses) == 1
	}, time.Second, 5*time.Millisecond)

	rec = api.do(t, http.MethodDelete, "/api/crops/"+id+"/expenses/0", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/crops/"+id+"/expenses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewNavigation(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/open", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/crops/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var active map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	assert.Equal(t, "details", active["view"])

	rec = api.do(t, http.MethodPost, "/api/crops/view/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/crops/active", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	assert.Equal(t, "list", active["view"])

	rec = api.do(t, http.MethodPost, "/api/crops/ghost/open", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportReport(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		File string `json:"file"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.File)

	rec = api.do(t, http.MethodPost, "/api/crops/ghost/report", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportReportToSheet(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCrop(t, "Wheat")

	rec := api.do(t, http.MethodPost, "/api/crops/"+id+"/report/sheet", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, []string{"Reports!A:C"}, api.exporter.ranges)
	require.NotEmpty(t, api.exporter.rows)
	assert.Equal(t, []interface{}{"Crop Report - Wheat"}, api.exporter.rows[0])

	rec = api.do(t, http.MethodPost, "/api/crops/ghost/report/sheet", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/profile/uid-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPut, "/api/profile/uid-1", gin.H{
		"name":    "Ramesh",
		"village": "Khandwa",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/profile/uid-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "uid-1", profile["uid"])
	assert.Equal(t, "Ramesh", profile["name"])
}

func TestStaticContentEndpoints(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/api/schemes", "/api/tips", "/api/faqs", "/api/contact"} {
		rec := api.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.Bytes(), path)
	}
}
