package errors

import sterrors "errors"

var (
	ErrConfigRequired  = sterrors.New("regbus: monitor config is required")
	ErrLoggerRequired  = sterrors.New("regbus: logger is required")
	ErrBusNameRequired = sterrors.New("regbus: bus name is required")
	ErrDuplicateBus    = sterrors.New("regbus: bus is already registered")
	ErrNoProbes        = sterrors.New("regbus: at least one probe is required")
	ErrMonitorStarted  = sterrors.New("regbus: monitor is already started")
)
