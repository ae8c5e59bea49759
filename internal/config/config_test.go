package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AWS: AWSConfig{
			DefaultRegion:  "us-east-1",
			RequestTimeout: 30 * time.Second,
		},
		UI: DefaultUIConfig(),
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty default region", func(c *Config) { c.AWS.DefaultRegion = "" }, "aws.default_region"},
		{"timeout too short", func(c *Config) { c.AWS.RequestTimeout = time.Millisecond }, "aws.request_timeout"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"list too narrow", func(c *Config) { c.UI.TableList.ListWidth = 3 }, "ui.table_list.list_width"},
		{"attribute width", func(c *Config) { c.UI.Table.MaxAttributeWidth = 2 }, "ui.table.max_attribute_width"},
		{"popup width", func(c *Config) { c.UI.Table.ExpandedPopupWidth = 5 }, "ui.table.expanded_popup_width"},
		{"popup height", func(c *Config) { c.UI.Table.ExpandedPopupHeight = 0 }, "ui.table.expanded_popup_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `aws:
  region: eu-west-1
  endpoint_url: http://localhost:8000
ui:
  theme: light
  table:
    max_attribute_width: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.EndpointURL)
	assert.Equal(t, "us-east-1", cfg.AWS.DefaultRegion)
	assert.Equal(t, 30*time.Second, cfg.AWS.RequestTimeout)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 40, cfg.UI.Table.MaxAttributeWidth)
	assert.Equal(t, 35, cfg.UI.Table.ExpandedPopupWidth)
	assert.Equal(t, 30, cfg.UI.TableList.ListWidth)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}
