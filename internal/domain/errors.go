package domain

import "errors"

// Common domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrStudentIDTaken   = errors.New("student id already registered")
	ErrLinkedEmailTaken = errors.New("linked email already registered")
)
