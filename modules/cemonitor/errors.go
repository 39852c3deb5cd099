package cemonitor

import (
	"errors"
)

// Error definitions for the cemonitor module
var (
	ErrObserverNil      = errors.New("observer is nil")
	ErrEventDataInvalid = errors.New("event data is invalid")
	ErrUnknownEventType = errors.New("unknown monitor event type")
)
