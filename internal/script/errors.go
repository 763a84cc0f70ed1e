package script

import "errors"

// Sentinel errors returned by script parsing and execution.
var (
	// ErrInvalidScript is returned when a script cannot be decoded or a step
	// is missing a required field.
	ErrInvalidScript = errors.New("script: invalid script")

	// ErrUnknownOp is returned for a step whose op is not recognised.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrUnknownConverter is returned by a map step naming a converter that
	// does not exist.
	ErrUnknownConverter = errors.New("script: unknown converter")

	// ErrUnknownSnapshot is returned by a thaw step naming a snapshot that
	// was never frozen.
	ErrUnknownSnapshot = errors.New("script: unknown snapshot")

	// ErrInvalidFormat is returned by [Config.Validate] and [Write] for an
	// unsupported output format.
	ErrInvalidFormat = errors.New("script: invalid output format")

	// ErrInvalidLogLevel is returned by [Config.Validate] for a log level
	// zerolog does not know.
	ErrInvalidLogLevel = errors.New("script: invalid log level")
)
