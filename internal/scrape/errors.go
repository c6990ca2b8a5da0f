package scrape

import "fmt"

// ParseError represents fetched content that is not parseable markup. It is
// a request-level failure: the orchestrator reports it in the response
// envelope rather than returning partial records.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
