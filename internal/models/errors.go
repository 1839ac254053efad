package models

import (
	"errors"
	"strings"
)

// MaxNameLength is the longest apiary or hive name the store accepts
const MaxNameLength = 100

// Validation errors shared by every entity
var (
	// ErrEmptyName indicates an apiary or hive without a name
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong indicates a name over MaxNameLength characters
	ErrNameTooLong = errors.New("name cannot exceed 100 characters")

	// ErrMissingTimestamp indicates a record or meteo record without a timestamp
	ErrMissingTimestamp = errors.New("timestamp is required")

	// ErrNegativeBees indicates a record with a negative bee count
	ErrNegativeBees = errors.New("number of bees cannot be negative")
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
