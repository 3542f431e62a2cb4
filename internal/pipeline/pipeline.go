package pipeline

import "net/http"

// Error stops a pipeline. Status is the HTTP code the handler should
// answer with, Message goes into the {"error": ...} body verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Status: http.StatusNotFound, Message: msg} }

// Step is one check in a validation pipeline. It reads the request
// context (payload plus whatever earlier steps resolved into it) and
// either lets the chain proceed (nil) or stops it.
type Step[T any] func(rc *T) *Error

// Run executes steps strictly in order and returns the first failure.
// Steps after the first failure never run.
func Run[T any](rc *T, steps ...Step[T]) *Error {
	for _, step := range steps {
		if err := step(rc); err != nil {
			return err
		}
	}
	return nil
}
