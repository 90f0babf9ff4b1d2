package config

// Config is the top-level configuration structure for rainmap.
type Config struct {
	Render   RenderConfig `yaml:"render"`
	Mosaic   MosaicConfig `yaml:"mosaic"`
	LogLevel string       `yaml:"logLevel,omitempty"` // "debug", "info", "warn", or "error"
}

// RenderConfig holds the settings shared by the per-day and mosaic renderers.
type RenderConfig struct {
	Gradient string  `yaml:"gradient,omitempty"` // ramp name from the built-in catalog, e.g. "Greens"
	Scale    float64 `yaml:"scale,omitempty"`    // cell value that maps to the top of the ramp
	Output   string  `yaml:"output,omitempty"`   // directory for the per-day frames
}

// MosaicConfig defines the layout of the all-years composite image.
type MosaicConfig struct {
	StartYear int `yaml:"startYear,omitempty"` // first year row in the composite
	EndYear   int `yaml:"endYear,omitempty"`   // last year row (inclusive)
	Rows      int `yaml:"rows,omitempty"`      // pixel rows reserved per year band
}
