package extract

import "errors"

// ErrInvalidInput is returned when the page source is missing or cannot be
// read. No partial result accompanies it.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")
