package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/ocr"
)

// LoadOCRConfig reads the OCR service settings from the given file (yaml,
// keys per ocr.Config mapstructure tags). The API key can always be
// overridden through OCR_API_KEY so secrets stay out of checked-in config.
func LoadOCRConfig(path string) (ocr.Config, error) {
	var cfg ocr.Config

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read ocr config file: %w", err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse ocr config: %w", err)
		}
	}

	if key := os.Getenv("OCR_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("ocr api key missing: set OCR_API_KEY or api_key in %q", path)
	}
	return cfg, nil
}
