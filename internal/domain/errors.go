package domain

import "errors"

var (
	ErrUnitNotFound    = errors.New("equipment unit not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrBookingConflict = errors.New("unit is not available for the requested window")
	ErrDuplicateSerial = errors.New("serial number is already registered")
)

var (
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrReconcileInProgress = errors.New("reconciliation already in progress")

	// ErrStatusRace reports a guarded status write that found the row already
	// moved on. The caller decides whether to retry or stand down.
	ErrStatusRace = errors.New("unit status changed concurrently")
)

var (
	ErrValidation = errors.New("validation error")

	// ErrStorage marks collaborator I/O failures so callers can tell
	// "unavailable" apart from "the system broke".
	ErrStorage = errors.New("storage error")
)
