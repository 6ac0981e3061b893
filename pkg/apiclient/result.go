package apiclient

import "errors"

var errEmptyResult = errors.New("empty result")

// SuccessResponse carries the decoded payload of a successful call.
type SuccessResponse[T any] struct {
	Data T
}

// ErrorResponse carries a failed call. Err keeps the classified cause
// (TransportError, StatusError or DecodeError) for errors.As.
type ErrorResponse struct {
	Message string
	Err     error
}

func (e ErrorResponse) Error() string { return e.Message }
func (e ErrorResponse) Unwrap() error { return e.Err }

// Result holds exactly one of SuccessResponse or ErrorResponse. The zero value
// is a failure.
type Result[T any] struct {
	success *SuccessResponse[T]
	failure *ErrorResponse
}

// Succeeded wraps data as a successful Result.
func Succeeded[T any](data T) Result[T] {
	return Result[T]{success: &SuccessResponse[T]{Data: data}}
}

// Failed wraps err as a failed Result.
func Failed[T any](err error) Result[T] {
	if err == nil {
		err = errEmptyResult
	}
	return Result[T]{failure: &ErrorResponse{Message: err.Error(), Err: err}}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.success != nil }

// Success returns the success variant.
func (r Result[T]) Success() (SuccessResponse[T], bool) {
	if r.success == nil {
		return SuccessResponse[T]{}, false
	}
	return *r.success, true
}

// Failure returns the error variant.
func (r Result[T]) Failure() (ErrorResponse, bool) {
	if r.success != nil {
		return ErrorResponse{}, false
	}
	if r.failure == nil {
		return ErrorResponse{Message: errEmptyResult.Error(), Err: errEmptyResult}, true
	}
	return *r.failure, true
}

// Unwrap converts the Result into Go's usual value/error pair.
func (r Result[T]) Unwrap() (T, error) {
	if s, ok := r.Success(); ok {
		return s.Data, nil
	}
	f, _ := r.Failure()
	var zero T
	return zero, f
}
