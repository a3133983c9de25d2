package services

import "fmt"

// ValidationError is a caller mistake: a required field is missing or
// blank. Nothing has been stored or sent when it is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "Missing required field: " + e.Field
}

// StorageError means the ticket store could not be reached or rejected the
// operation. Op is "create" or "list".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ticket store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotificationError means the confirmation could not be rendered or was not
// accepted by the delivery channel. It never fails a submission.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s: %v", e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
