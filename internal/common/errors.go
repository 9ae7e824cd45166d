package common

import "errors"

var (

	// storage specific errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrMigrationFailed    = errors.New("migration failed")

	// domain specific errors
	ErrValidation      = errors.New("validation error")
	ErrParentNotFound  = errors.New("parent record not found")
	ErrWrongInspection = errors.New("media belongs to a different inspection")
)
