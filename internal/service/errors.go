package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAdminRequired       = errors.New("root administrator privileges required")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
