package services

import "fmt"

// ValidationError reports a missing or empty required field on a direct API
// request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that no record matched the given id or filter.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ExtractionError reports a document that could not be opened or read.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// MalformedSubmissionError reports a grading batch whose shape is wrong,
// either at the top level or on an individual item.
type MalformedSubmissionError struct {
	Msg string
}

func (e *MalformedSubmissionError) Error() string { return e.Msg }
