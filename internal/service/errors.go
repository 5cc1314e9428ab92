package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotAuthenticated    = errors.New("not authenticated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTopicNotFound = errors.New("topic not found")
)
