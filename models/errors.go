package models

// Errors returned by the services layer. The HTTP helper maps each type to
// a response code.

type ErrorBadRequest struct{ Message string }

func (e ErrorBadRequest) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorWrite is an unclassified persistence failure.
type ErrorWrite struct {
	Message string
	Err     error
}

func (e ErrorWrite) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e ErrorWrite) Unwrap() error { return e.Err }

var (
	ErrBadRequest      = ErrorBadRequest{Message: "Bad request"}
	ErrNoSuchClub      = ErrorNotFound{Message: "No such club"}
	ErrNoSuchUser      = ErrorNotFound{Message: "No such user"}
	ErrNoSuchTag       = ErrorNotFound{Message: "No such tag"}
	ErrDuplicateFields = ErrorConflict{Message: "Duplicate fields"}
	ErrUsernameExists  = ErrorConflict{Message: "Username exists"}
	ErrLoginRequired   = ErrorUnauthorized{Message: "Login required"}
	ErrUnknownLogin    = ErrorUnauthorized{Message: "no such user"}
	ErrLoginFailed     = ErrorUnauthorized{Message: "login failed"}
)

func WriteError(err error) ErrorWrite {
	return ErrorWrite{Message: "Write error", Err: err}
}
