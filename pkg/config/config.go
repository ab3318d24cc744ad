package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// An empty path yields the validated default configuration.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors, fills defaults and compiles
// the category patterns.
func Validate(cfg *Config) error {
	if len(cfg.Categories) == 0 {
		return errors.New("categories: at least one category is required")
	}

	seen := make(map[string]bool, len(cfg.Categories))
	for i := range cfg.Categories {
		cat := &cfg.Categories[i]
		if err := validateCategory(cat); err != nil {
			return fmt.Errorf("categories[%d] (%s): %w", i, cat.Name, err)
		}
		if seen[cat.Name] {
			return fmt.Errorf("categories[%d]: duplicate name %q", i, cat.Name)
		}
		seen[cat.Name] = true
	}

	if err := validateChart(&cfg.Chart); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateCategory(cat *Category) error {
	if cat.Name == "" {
		return errors.New("name is required")
	}
	if cat.Label == "" {
		cat.Label = cat.Name
	}

	if cat.Header == "" {
		return errors.New("header is required")
	}
	header, err := regexp.Compile(cat.Header)
	if err != nil {
		return fmt.Errorf("invalid header: %w", err)
	}
	cat.compiledHeader = header

	if cat.Total == "" {
		return errors.New("total is required")
	}
	if _, err := regexp.Compile(cat.Total); err != nil {
		return fmt.Errorf("invalid total: %w", err)
	}

	// Header and total may be separated by any number of lines; the lazy
	// span stops at the first total after the header. Both fragments are
	// grouped so an alternation inside one cannot split the whole pattern.
	pattern, err := regexp.Compile(`(?s)(?:` + cat.Header + `).*?(?:` + cat.Total + `)\s*([\d.]+)`)
	if err != nil {
		return fmt.Errorf("invalid block pattern: %w", err)
	}
	if pattern.NumSubexp() != 1 {
		return fmt.Errorf("header and total must not contain capture groups (found %d)", pattern.NumSubexp()-1)
	}
	cat.compiledPattern = pattern

	if cat.Divisor < 0 {
		return fmt.Errorf("divisor must be positive, got %g", cat.Divisor)
	}
	if cat.Divisor == 0 {
		cat.Divisor = 1
	}

	if cat.Color == "" {
		cat.Color = "gray"
	}
	rgba, ok := colornames.Map[strings.ToLower(cat.Color)]
	if !ok {
		return fmt.Errorf("unknown color %q (use a CSS color name)", cat.Color)
	}
	cat.rgba = rgba

	return nil
}

func validateChart(chart *ChartConfig) error {
	if chart.Width < 0 || chart.Height < 0 {
		return fmt.Errorf("size must be positive, got %gx%g", chart.Width, chart.Height)
	}
	if chart.Width == 0 {
		chart.Width = DefaultChartWidth
	}
	if chart.Height == 0 {
		chart.Height = DefaultChartHeight
	}

	if chart.GridAlpha < 0 || chart.GridAlpha > 1 {
		return fmt.Errorf("grid_alpha must be between 0 and 1, got %g", chart.GridAlpha)
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	switch wh.Trigger {
	case "":
		wh.Trigger = WebhookTriggerAlways
	case WebhookTriggerAlways, WebhookTriggerOnMissing, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be always, on_missing, or never)", wh.Trigger)
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
