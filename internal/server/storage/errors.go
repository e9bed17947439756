package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrBlobNotFound indicates that blob was not found in the blob store
	ErrBlobNotFound = errors.New("blob not found")
)
