package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by every store operation before Initialize succeeds
	ErrNotInitialized = errors.New("task store is not initialized")

	// ErrResetDisabled is returned by Reset unless the store was built in dev mode
	ErrResetDisabled = errors.New("reset is only available in dev mode")

	// ErrNoConnection is wrapped by Initialize when the store has no database handle
	ErrNoConnection = errors.New("no database connection")
)

// StorageInitError reports that the device storage or the task table
// could not be opened or created.
type StorageInitError struct {
	Op  string
	Err error
}

func (e *StorageInitError) Error() string {
	return fmt.Sprintf("storage init failed (%s): %v", e.Op, e.Err)
}

func (e *StorageInitError) Unwrap() error {
	return e.Err
}

// StorageWriteError reports a failed insert, update or delete
type StorageWriteError struct {
	Op  string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed (%s): %v", e.Op, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// StorageReadError reports a failed query. Only ListChecked surfaces it;
// List degrades it to an empty result.
type StorageReadError struct {
	Op  string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("storage read failed (%s): %v", e.Op, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the storage layer
func IsStorageError(err error) bool {
	var initErr *StorageInitError
	var writeErr *StorageWriteError
	var readErr *StorageReadError
	return errors.As(err, &initErr) || errors.As(err, &writeErr) || errors.As(err, &readErr)
}
