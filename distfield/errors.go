package distfield

import (
	"errors"
	"fmt"
)

// Sentinel errors for distfield package.
var (
	// ErrInvalidInput is returned for a nil raster, a raster with zero width
	// or height, or one larger than MaxDimension on either axis.
	ErrInvalidInput = errors.New("distfield: invalid input raster")

	// ErrDegenerateGeometry is returned when the output raster would have
	// zero width or height.
	ErrDegenerateGeometry = errors.New("distfield: output size must be at least 1x1")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "distfield: invalid config." + e.Field + ": " + e.Reason
}

// InvariantError reports a level-0 quadtree node whose max and min summaries
// disagree about coverage. A single cell cannot be both covered and empty,
// so this is always a bug in mask construction.
//
// It is raised as a panic only in builds with the sdfdebug tag. Other
// builds treat such a node as empty.
type InvariantError struct {
	Search string
	Index  uint32
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("distfield: %s search reached mixed leaf %d", e.Search, e.Index)
}
