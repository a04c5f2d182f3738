package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("APP_PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "")
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "kisanseva", cfg.MongoDB.DBName)
	assert.Equal(t, "0 20 * * *", cfg.Reporting.CronSchedule)
	assert.Equal(t, "Summaries!A:F", cfg.Reporting.SummaryRange)
	assert.Equal(t, "Reports!A:C", cfg.Reporting.ReportRange)
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadRequiresWeatherKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoadRejectsHalfConfiguredSheets(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "")

	_, err := Load("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEET_DATABASE_ID")
}

func TestSheetsEnabled(t *testing.T) {
	assert.True(t, SheetsConfig{CredentialsPath: "a", SpreadsheetID: "b"}.Enabled())
	assert.False(t, SheetsConfig{CredentialsPath: "a"}.Enabled())
	assert.False(t, SheetsConfig{}.Enabled())
}
