package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	AWS     AWSConfig `mapstructure:"aws"`
	UI      UIConfig  `mapstructure:"ui"`
	LogFile string    `mapstructure:"log_file"`
	Debug   bool      `mapstructure:"debug"`
}

// AWSConfig holds the parameters used to build the DynamoDB client
type AWSConfig struct {
	Region         string        `mapstructure:"region"`
	EndpointURL    string        `mapstructure:"endpoint_url"`
	Profile        string        `mapstructure:"profile"`
	DefaultRegion  string        `mapstructure:"default_region"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// UIConfig holds user interface preferences. Values are read once when a
// screen is constructed.
type UIConfig struct {
	Theme     string          `mapstructure:"theme"`
	TableList TableListConfig `mapstructure:"table_list"`
	Table     TableConfig     `mapstructure:"table"`
}

// TableListConfig configures the table list screen
type TableListConfig struct {
	ListWidth int `mapstructure:"list_width"`
}

// TableConfig configures the table browser screen
type TableConfig struct {
	MaxAttributeWidth   int `mapstructure:"max_attribute_width"`
	ExpandedPopupWidth  int `mapstructure:"expanded_popup_width"`
	ExpandedPopupHeight int `mapstructure:"expanded_popup_height"`
}

// DefaultUIConfig returns the UI settings used when no config file exists.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Theme:     "dark",
		TableList: TableListConfig{ListWidth: 30},
		Table: TableConfig{
			MaxAttributeWidth:   30,
			ExpandedPopupWidth:  35,
			ExpandedPopupHeight: 6,
		},
	}
}

// LoadConfig loads configuration from a YAML file and environment variables.
// If path is empty, config.yaml is searched in $HOME/.config/ddv and the
// working directory.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/ddv")
		viper.AddConfigPath(".")
	}

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("DDV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.AWS.DefaultRegion == "" {
		return fmt.Errorf("aws.default_region cannot be empty")
	}
	if cfg.AWS.RequestTimeout < time.Second || cfg.AWS.RequestTimeout > 10*time.Minute {
		return fmt.Errorf("aws.request_timeout must be between 1s and 10m, got %v", cfg.AWS.RequestTimeout)
	}

	validThemes := []string{"dark", "light"}
	validTheme := false
	for _, theme := range validThemes {
		if cfg.UI.Theme == theme {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", validThemes, cfg.UI.Theme)
	}

	if cfg.UI.TableList.ListWidth < 10 || cfg.UI.TableList.ListWidth > 200 {
		return fmt.Errorf("ui.table_list.list_width must be between 10 and 200, got %d", cfg.UI.TableList.ListWidth)
	}
	if cfg.UI.Table.MaxAttributeWidth < 4 {
		return fmt.Errorf("ui.table.max_attribute_width must be >= 4, got %d", cfg.UI.Table.MaxAttributeWidth)
	}
	if cfg.UI.Table.ExpandedPopupWidth < 10 {
		return fmt.Errorf("ui.table.expanded_popup_width must be >= 10, got %d", cfg.UI.Table.ExpandedPopupWidth)
	}
	if cfg.UI.Table.ExpandedPopupHeight < 1 {
		return fmt.Errorf("ui.table.expanded_popup_height must be >= 1, got %d", cfg.UI.Table.ExpandedPopupHeight)
	}

	return nil
}

// applyDefaults sets default configuration values
func applyDefaults() {
	ui := DefaultUIConfig()

	// AWS defaults
	viper.SetDefault("aws.region", "")
	viper.SetDefault("aws.endpoint_url", "")
	viper.SetDefault("aws.profile", "")
	viper.SetDefault("aws.default_region", "us-east-1")
	viper.SetDefault("aws.request_timeout", "30s")

	// UI defaults
	viper.SetDefault("ui.theme", ui.Theme)
	viper.SetDefault("ui.table_list.list_width", ui.TableList.ListWidth)
	viper.SetDefault("ui.table.max_attribute_width", ui.Table.MaxAttributeWidth)
	viper.SetDefault("ui.table.expanded_popup_width", ui.Table.ExpandedPopupWidth)
	viper.SetDefault("ui.table.expanded_popup_height", ui.Table.ExpandedPopupHeight)

	viper.SetDefault("log_file", "")
	viper.SetDefault("debug", false)
}
