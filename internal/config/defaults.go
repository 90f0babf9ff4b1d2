package config

// Defaults match the historical radar pipeline. The scale of 5.7 is the
// 90th percentile of observed hourly totals, so roughly one cell in ten
// saturates the ramp.
const (
	DefaultGradient  = "Greens"
	DefaultScale     = 5.7
	DefaultOutput    = "out"
	DefaultStartYear = 1971
	DefaultEndYear   = 2005
	DefaultRows      = 65
	DefaultLogLevel  = "info"
)

// GetDefaultConfig returns the built-in configuration used when no config
// files are present.
func GetDefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Gradient: DefaultGradient,
			Scale:    DefaultScale,
			Output:   DefaultOutput,
		},
		Mosaic: MosaicConfig{
			StartYear: DefaultStartYear,
			EndYear:   DefaultEndYear,
			Rows:      DefaultRows,
		},
		LogLevel: DefaultLogLevel,
	}
}
