package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNavigation represents page navigation and wait timeouts
	ErrorTypeNavigation ErrorType = "navigation"
	// ErrorTypeExtraction represents per-item extraction failures
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeSubmission represents ingestion API submission failures
	ErrorTypeSubmission ErrorType = "submission"
	// ErrorTypeStore represents price history store failures
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeFatal represents run-fatal failures (browser launch, listing never loads)
	ErrorTypeFatal ErrorType = "fatal"
)

// ScrapeError represents a pipeline-specific error
type ScrapeError struct {
	Type     ErrorType
	Category string
	Message  string
	Err      error
	Time     time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Category, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error should abort the run
func (e *ScrapeError) IsFatal() bool {
	return e.Type == ErrorTypeFatal
}

// IsRetryable reports whether the operation may succeed on a later attempt.
// Navigation timeouts and submission failures are transient; extraction and
// store errors are not.
func (e *ScrapeError) IsRetryable() bool {
	return e.Type == ErrorTypeNavigation || e.Type == ErrorTypeSubmission
}

// New creates a new ScrapeError
func New(errType ErrorType, category, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:     errType,
		Category: category,
		Message:  message,
		Err:      err,
		Time:     time.Now(),
	}
}

// NewNavigation creates a new navigation error
func NewNavigation(category, message string, err error) *ScrapeError {
	return New(ErrorTypeNavigation, category, message, err)
}

// NewExtraction creates a new extraction error
func NewExtraction(category, message string, err error) *ScrapeError {
	return New(ErrorTypeExtraction, category, message, err)
}

// NewSubmission creates a new submission error
func NewSubmission(category, message string, err error) *ScrapeError {
	return New(ErrorTypeSubmission, category, message, err)
}

// NewStore creates a new store error
func NewStore(category, message string, err error) *ScrapeError {
	return New(ErrorTypeStore, category, message, err)
}

// NewFatal creates a new fatal error
func NewFatal(category, message string, err error) *ScrapeError {
	return New(ErrorTypeFatal, category, message, err)
}
