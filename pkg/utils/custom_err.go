package utils

import "errors"

var (
	ErrEmptyInput      = errors.New("please tell us about your interests first")
	ErrInvalidDays     = errors.New("please choose between 1 and 30 days")
	ErrNoDestinations  = errors.New("no destinations found")
	ErrRequestInFlight = errors.New("a trip is already being planned")
	ErrInvalidInput    = errors.New("invalid input")
)

// TransportError covers network failures and non-2xx planning responses.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	return e.Reason
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AppError is a message reported by the planning backend itself.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
