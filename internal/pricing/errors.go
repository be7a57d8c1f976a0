package pricing

// Error codes mirror the domain error codes used across the service so the
// handler layer can map them to HTTP statuses without importing pricing
// internals.
const (
	codeInvalid = "invalid"
)

// Error is a pricing validation error with a stable code and a user-facing
// message. The engine itself never returns errors; these come from the
// Validate functions guarding its inputs at the boundary.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *Error) ErrorCode() string {
	return e.Code
}

func invalid(message string) *Error {
	return &Error{Code: codeInvalid, Message: message}
}
