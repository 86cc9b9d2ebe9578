package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrRunNotFinished is returned when an upload carries a run that is
	// still pending or running. The tracker stores terminal runs only.
	ErrRunNotFinished = errors.New("run is not in a terminal status")
)
