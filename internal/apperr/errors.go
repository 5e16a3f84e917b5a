package apperr

// Error is the domain error type surfaced by the repository and identity
// layers. Domain-rule violations carry one of the code constants below;
// unexpected store errors pass through as CodeStoreFailure with the origin
// attached, never masked.
type Error struct {
	Code    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (e *Error) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Origin
}

// Standard error codes for the application
const (
	// User errors
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Content errors
	CodeDuplicateSubreddit   = "DUPLICATE_SUBREDDIT"
	CodeMissingSubreddit     = "MISSING_SUBREDDIT"
	CodeInvalidVoteDirection = "INVALID_VOTE_DIRECTION"

	// Token errors
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeInvalidResetToken = "INVALID_RESET_TOKEN"

	// Anything the store reports that has no domain meaning
	CodeStoreFailure = "STORE_FAILURE"
)

func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code string, message string, origin error) *Error {
	return &Error{Code: code, Message: message, Origin: origin}
}

// CodeOf returns the domain code of err, or "" when err is not an *Error.
func CodeOf(err error) string {
	if appErr, ok := err.(*Error); ok {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given domain code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps a domain code to the status the route layer should answer
// with. The core itself never renders responses.
func HTTPStatus(code string) int {
	switch code {
	case CodeUserNotFound, CodeSessionNotFound:
		return 404 // http.StatusNotFound
	case CodeInvalidVoteDirection, CodeMissingSubreddit, CodeInvalidResetToken:
		return 400 // http.StatusBadRequest
	case CodeInvalidCredentials:
		return 401 // http.StatusUnauthorized
	case CodeDuplicateUser, CodeDuplicateSubreddit:
		return 409 // http.StatusConflict
	default:
		return 500 // http.StatusInternalServerError
	}
}
