package directory

import "errors"

// Kind classifies directory operation failures.
type Kind string

const (
	KindPermissionDenied   Kind = "permission_denied"
	KindRemoteFailure      Kind = "remote_failure"
	KindLocalInconsistency Kind = "local_inconsistency"
	KindUnexpected         Kind = "unexpected"
)

// Error is the structured failure surfaced by every directory operation:
// a human-readable message, plus optional provider diagnostics and code.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func permissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// normalize coerces any failure into the structured shape. Store errors pass
// through with their provider diagnostics; anything else becomes Unexpected
// with the fallback message.
func normalize(err error, fallback string) *Error {
	var dirErr *Error
	if errors.As(err, &dirErr) {
		if dirErr.Message == "" {
			dirErr.Message = fallback
		}
		return dirErr
	}
	return &Error{Kind: KindUnexpected, Message: fallback, Details: err.Error()}
}
