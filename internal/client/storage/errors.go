package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrDocumentNotFound indicates that cached document was not found
	ErrDocumentNotFound = errors.New("cached document not found")

	// ErrQuizNotFound indicates that cached quiz was not found
	ErrQuizNotFound = errors.New("cached quiz not found")

	// ErrStatusNotFound indicates that no sync status has been persisted yet
	ErrStatusNotFound = errors.New("sync status not found")
)

// OpError сигнализирует сбой самого локального хранилища (не "не найдено").
// Потеря очереди — это потеря пользовательского интента, поэтому такие
// ошибки различимы для вызывающего кода и никогда не проглатываются.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("local storage %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsStorageFailure сообщает, вызвана ли ошибка сбоем локального хранилища
func IsStorageFailure(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr)
}
