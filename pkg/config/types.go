// Package config provides configuration loading and validation for the
// chat analytics CLI.
package config

import (
	"regexp"
	"time"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	ChatSources      []string        `yaml:"chat_sources"`
	HeaderFormat     HeaderConfig    `yaml:"header_format"`
	InvalidTimestamp string          `yaml:"invalid_timestamp,omitempty"` // drop (default) or keep
	Report           ReportConfig    `yaml:"report,omitempty"`
	Webhooks         []WebhookConfig `yaml:"webhooks,omitempty"`
}

// HeaderConfig defines how message headers are recognized and parsed.
type HeaderConfig struct {
	// Pattern is a regex matching a message header line. Must have exactly
	// three capture groups: timestamp, author, inline body.
	Pattern string `yaml:"pattern"`

	// Layouts are Go time layouts for parsing the captured timestamp,
	// tried in order. See https://pkg.go.dev/time#pkg-constants for format.
	Layouts []string `yaml:"layouts"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled header regex.
func (h *HeaderConfig) CompiledPattern() *regexp.Regexp {
	return h.compiledPattern
}

// ReportConfig controls report presentation.
type ReportConfig struct {
	// TopWords is how many word-frequency entries the report shows.
	TopWords int `yaml:"top_words,omitempty"`

	// TopSymbols is how many symbol-frequency entries the report shows.
	TopSymbols int `yaml:"top_symbols,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every report (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending report results.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires. Defaults to "always".
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
