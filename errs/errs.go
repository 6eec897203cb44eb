// Package errs defines the error taxonomy shared by the services and the
// HTTP boundary. Controllers never inspect storage or transport errors
// directly; services translate them into these values and utils.ErrorResponse
// maps them onto status codes.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKind        = errors.New("invalid content kind")
	ErrNotFound           = errors.New("resource not found")
	ErrStorageUnavailable = errors.New("database not connected")
)

// ValidationError reports every required field that was missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s required", strings.Join(e.Fields, ", "))
}

// UploadError rejects a multipart intake before any record is touched.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return e.Reason
}

// MailDeliveryError wraps a transport failure from the outbound mail client.
type MailDeliveryError struct {
	Err error
}

func (e *MailDeliveryError) Error() string {
	return fmt.Sprintf("could not deliver email: %v", e.Err)
}

func (e *MailDeliveryError) Unwrap() error {
	return e.Err
}
