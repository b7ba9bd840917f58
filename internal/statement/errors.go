package statement

import "fmt"

// ParseErrorCode classifies document-level failures. Missing fields and unknown
// issuers are not errors; the only real failure modes live here.
type ParseErrorCode string

const (
	ErrUnreadableDocument ParseErrorCode = "UNREADABLE_DOCUMENT"
	ErrInvalidInput       ParseErrorCode = "INVALID_INPUT"
)

// ParseError is a structured error for document processing failures.
type ParseError struct {
	Code    ParseErrorCode
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Code, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Unreadable wraps cause as an UNREADABLE_DOCUMENT failure for path.
func Unreadable(path string, cause error) *ParseError {
	return &ParseError{
		Code:    ErrUnreadableDocument,
		Path:    path,
		Message: "cannot extract text from document",
		Cause:   cause,
	}
}
