// Package config provides configuration management for rainmap.
//
// This package implements a layered configuration system that allows users
// to customize rainmap's behavior through YAML files. Configuration is
// loaded from multiple sources and merged in a specific order, with later
// sources overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides the historical rendering defaults
//     - Ensures rainmap works out-of-the-box
//
//  2. User Configuration (~/.config/rainmap/config.yaml)
//     - User-specific settings that apply everywhere
//
//  3. Project Configuration (./.rainmap/config.yaml)
//     - Settings for the dataset in the current directory
//     - Allows teams to share rendering parameters via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format:
//
//	render:
//	  gradient: "Greens"   # ramp name from the built-in catalog
//	  scale: 5.7           # cell value mapped to the top of the ramp
//	  output: "out"        # directory for the per-day frames
//
//	mosaic:
//	  startYear: 1971
//	  endYear: 2005
//	  rows: 65
//
//	logLevel: "info"
//
// Zero values in an overlay leave the underlying setting untouched, so a
// project file that only sets render.gradient inherits everything else.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("rendering with %s ramp, scale %.1f\n",
//	    cfg.Render.Gradient, cfg.Render.Scale)
package config
