package util

import "errors"

var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrIncorrectPassword      = errors.New("incorrect password")
	ErrMissingCredentials     = errors.New("missing username or password")
	ErrMissingInteractionRefs = errors.New("student_id and content_id are required")
)
