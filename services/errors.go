package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrItemNotFound  = errors.New("item not found")
	ErrItemForbidden = errors.New("item owned by another user")

	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrSubmissionForbidden = errors.New("submission owned by another user")
)
