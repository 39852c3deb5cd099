package monitor

import (
	"errors"
)

// Monitor errors
var (
	// Member descriptor errors
	ErrNotAFunction   = errors.New("value is not a non-nil function")
	ErrMethodNotFound = errors.New("method not found")
	ErrNilInstance    = errors.New("instance is nil")

	// Drive helper errors
	ErrArgumentMismatch = errors.New("arguments do not match function signature")
	ErrCallPanicked     = errors.New("call panicked")

	// Configuration errors
	ErrConfigNil             = errors.New("config is nil")
	ErrInvalidLevel          = errors.New("invalid log level")
	ErrInvalidFormat         = errors.New("invalid log format")
	ErrUnknownBackend        = errors.New("unknown logging backend")
	ErrUnsupportedFormatType = errors.New("unsupported config file format")
	ErrEnvInvalidStructure   = errors.New("env: invalid structure")
)
