package core

import "errors"

// Precondition violations. None of these occur while tracing a valid scene;
// they are returned from constructors and entry points that reject bad input.
var (
	ErrZeroDirection     = errors.New("zero-length direction")
	ErrInvalidRadius     = errors.New("radius must be positive")
	ErrInvalidResolution = errors.New("width and height must be positive")
	ErrInvalidCamera     = errors.New("invalid camera")
	ErrInvalidMaterial   = errors.New("invalid material")
	ErrUnknownScene      = errors.New("unknown scene")
	ErrUnknownShading    = errors.New("unknown shading model")
	ErrUnknownFormat     = errors.New("unknown image format")
)
