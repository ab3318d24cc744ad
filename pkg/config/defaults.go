package config

import (
	"os"
	"time"
)

// Fixed input and output locations, relative to the working directory.
const (
	LogFile   = "times.txt"
	ChartFile = "tiempos_promedio.png"
)

// Category names.
const (
	CategorySequential = "sequential"
	CategoryOpenMP     = "openmp"
	CategoryCUDA       = "cuda"
)

// Default values for configuration.
const (
	DefaultChartTitle     = "Tiempo medio de ejecución por aproximación"
	DefaultChartYLabel    = "Tiempo (segundos)"
	DefaultChartWidth     = 8.0
	DefaultChartHeight    = 5.0
	DefaultGridAlpha      = 0.6
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvChartTitle = "TIEMPOS_CHART_TITLE"
)

// DefaultCategories returns the three categories written by the benchmark runs,
// in report order.
func DefaultCategories() []Category {
	return []Category{
		{
			Name:    CategorySequential,
			Label:   "Secuencial",
			Header:  `Tiempo \d+ para Secuencial`,
			Total:   `Tiempo de CPU total:`,
			Divisor: 1,
			Color:   "gray",
		},
		{
			Name:    CategoryOpenMP,
			Label:   "OpenMP",
			Header:  `Tiempo \d+ para OpenMP`,
			Total:   `Tiempo de CPU total:`,
			Divisor: 1,
			Color:   "orange",
		},
		{
			Name:    CategoryCUDA,
			Label:   "CUDA",
			Header:  `Tiempo \d+ para CUDA`,
			Total:   `Tiempo GPU \+ transferencias:`,
			Divisor: 1000,
			Color:   "teal",
		},
	}
}

// DefaultConfig returns a configuration with the built-in categories and chart style.
func DefaultConfig() *Config {
	return &Config{
		Categories: DefaultCategories(),
		Chart: ChartConfig{
			Title:     DefaultChartTitle,
			YLabel:    DefaultChartYLabel,
			Width:     DefaultChartWidth,
			Height:    DefaultChartHeight,
			GridAlpha: DefaultGridAlpha,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if title := os.Getenv(EnvChartTitle); title != "" {
		c.Chart.Title = title
	}
}
