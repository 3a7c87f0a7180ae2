package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
date_range = "LAST_30_DAYS"
email = "ops@example.com"
email_only = false

[google_ads]
customer_id = "111-222-3333"
developer_token = "dev-token"

[smtp]
host = "smtp.example.com"
port = 587
from = "reports@example.com"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "LAST_30_DAYS", cfg.DateRange)
	assert.Equal(t, "ops@example.com", cfg.Email)
	assert.False(t, cfg.EmailOnly)
	assert.Equal(t, "111-222-3333", cfg.GoogleAds.CustomerID)
	assert.Equal(t, "dev-token", cfg.GoogleAds.DeveloperToken)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
date_range: LAST_7_DAYS
campaign_name_filter: Brand
report_type:
  - csv
  - json
google_ads:
  customer_id: "111-222-3333"
smtp:
  host: smtp.example.com
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "LAST_7_DAYS", cfg.DateRange)
	assert.Equal(t, "Brand", cfg.CampaignNameFilter)
	assert.Equal(t, []string{"csv", "json"}, cfg.ReportType)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "date_range": "20260801,20260831",
  "email": "ops@example.com",
  "email_only": true,
  "google_ads": {"customer_id": "1112223333"}
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "20260801,20260831", cfg.DateRange)
	assert.True(t, cfg.EmailOnly)
	assert.Equal(t, "1112223333", cfg.GoogleAds.CustomerID)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.Error(t, err)

	path := writeTempConfig(t, "config.ini", "date_range=LAST_7_DAYS")
	_, err = repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")

	path = writeTempConfig(t, "broken.json", "{not json")
	_, err = repo.LoadConfigFile(path)
	assert.Error(t, err)
}
