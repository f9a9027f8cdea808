package config

import (
	"os"
	"time"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// Default values for configuration.
const (
	DefaultWebhookTimeout = 10 * time.Second
	DefaultTopWords       = 10
	DefaultTopSymbols     = 10
)

// Environment variable names.
const (
	EnvChatSources     = "WA_ANALYTICS_CHAT_SOURCES"
	EnvTimestampLayout = "WA_ANALYTICS_TIMESTAMP_LAYOUT"
)

// DefaultConfig returns a configuration with sensible defaults: the
// standard WhatsApp export header shape and numeric M/D/YY layouts.
func DefaultConfig() *Config {
	return &Config{
		ChatSources: []string{},
		HeaderFormat: HeaderConfig{
			Pattern: parser.DefaultHeaderPattern,
			Layouts: []string{
				parser.DefaultTimestampLayout,
				parser.DefaultTimestampLayoutLong,
			},
		},
		InvalidTimestamp: string(parser.InvalidDrop),
		Report: ReportConfig{
			TopWords:   DefaultTopWords,
			TopSymbols: DefaultTopSymbols,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.HeaderFormat.Layouts = []string{layout}
	}
	if src := os.Getenv(EnvChatSources); src != "" {
		c.ChatSources = []string{src}
	}
}
