package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrInvalidState  = errors.New("invalid state")
	ErrConflict      = errors.New("concurrent update conflict")
	ErrUpstream      = errors.New("upstream failure")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
)

var (
	ErrPhotoTooLarge   = fmt.Errorf("%w: photo exceeds 2 MiB", ErrValidation)
	ErrPhotoNotImage   = fmt.Errorf("%w: photo must be an image", ErrValidation)
	ErrReasonRequired  = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrCourseMismatch  = fmt.Errorf("%w: course does not match training request", ErrValidation)
	ErrPersonnelFields = fmt.Errorf("%w: first name, last name, national id and position are required", ErrValidation)
)
