// Package config loads the settings of the gridpath viewer from a YAML
// file.
//
// What:
//
//   - grid:    a grid file to load, or the size of an empty editable grid.
//   - display: cell width/height, glyph overlay and the search frame rate.
//   - log:     slog level and an optional log file.
//   - metrics: optional listen address for the Prometheus endpoint.
//
// Missing keys keep the values from Default. Validate checks ranges with
// struct tags (go-playground/validator) and reports the first violation
// wrapped in ErrInvalidConfig.
//
// Example file:
//
//	grid:
//	  path: grids/maze.txt
//	display:
//	  cell_width: 2
//	  max_frame_rate: 60
//	log:
//	  level: debug
//	  file: gridpath.log
//	metrics:
//	  addr: 127.0.0.1:9464
package config
