// Package config provides configuration loading and validation for tiempos.
package config

import (
	"image/color"
	"regexp"
	"time"
)

// Config is the root configuration structure loaded from YAML.
// It only styles the report; input and output paths are fixed.
type Config struct {
	Categories []Category      `yaml:"categories"`
	Chart      ChartConfig     `yaml:"chart"`
	Webhooks   []WebhookConfig `yaml:"webhooks,omitempty"`
}

// Category defines one timing category and how its blocks are found in the log.
type Category struct {
	// Name is the stable identifier used in JSON output (sequential, openmp, cuda).
	Name string `yaml:"name"`

	// Label is the human-readable name printed and drawn under the bar.
	Label string `yaml:"label"`

	// Header is a regex fragment matching the line that opens a block.
	Header string `yaml:"header"`

	// Total is a regex fragment matching the label in front of the block total.
	Total string `yaml:"total"`

	// Divisor converts captured values to seconds. CUDA totals are
	// milliseconds, so the cuda category divides by 1000.
	Divisor float64 `yaml:"divisor,omitempty"`

	// Color is a CSS color name for the bar.
	Color string `yaml:"color,omitempty"`

	// compiledPattern is the block pattern (populated during validation).
	compiledPattern *regexp.Regexp

	// compiledHeader matches headers alone; used by diagnostics.
	compiledHeader *regexp.Regexp

	rgba color.RGBA
}

// CompiledPattern returns the compiled block pattern. The first capture group
// is the numeric total.
func (c *Category) CompiledPattern() *regexp.Regexp {
	return c.compiledPattern
}

// CompiledHeader returns the compiled header pattern.
func (c *Category) CompiledHeader() *regexp.Regexp {
	return c.compiledHeader
}

// RGBA returns the resolved bar color.
func (c *Category) RGBA() color.RGBA {
	return c.rgba
}

// ChartConfig styles the rendered bar chart.
type ChartConfig struct {
	Title  string `yaml:"title"`
	YLabel string `yaml:"y_label"`

	// Width and Height are in inches.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// GridAlpha is the opacity of the horizontal gridlines (0..1).
	GridAlpha float64 `yaml:"grid_alpha,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every report (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerOnMissing fires only when some category has no samples.
	WebhookTriggerOnMissing WebhookTrigger = "on_missing"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "always" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
