package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFileRequired indicates the designated multipart file field was empty.
	ErrFileRequired = errors.New("file is required")
	// ErrUploadTooLarge indicates the payload exceeded the configured limit.
	ErrUploadTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrFileStorage indicates the content directory write failed.
	ErrFileStorage = errors.New("failed to store file")
)

// AssociationError reports a publish that created only part of its per-student
// rows. Rows inserted before the failure stay in place; Created says how many.
type AssociationError struct {
	Matched int
	Created int
	Err     error
}

func (e *AssociationError) Error() string {
	return fmt.Sprintf("question paper associated with %d of %d students: %v", e.Created, e.Matched, e.Err)
}

func (e *AssociationError) Unwrap() error {
	return e.Err
}
