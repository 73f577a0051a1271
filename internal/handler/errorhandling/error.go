package errorhandling

import "net/http"

type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func NewValidationError(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func NewInternalServerError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
		Err:        err,
	}
}

func (err *Error) Render(rw http.ResponseWriter) {
	http.Error(rw, err.Message, err.StatusCode)
}
