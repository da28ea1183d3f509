// Package provider defines the interface for disposable mailbox backends.
package provider

import (
	"context"
	"fmt"

	"github.com/shineum/tmpmail/internal/address"
	"github.com/shineum/tmpmail/internal/mail"
)

// Provider is the interface that mailbox backends must implement.
// Each call is a single request/response exchange with the remote service.
type Provider interface {
	// ListMessages returns the inbox of addr in the provider's order.
	// An empty inbox is a non-nil empty slice.
	ListMessages(ctx context.Context, addr address.Address) ([]mail.Summary, error)

	// ReadMessage fetches a single message. It returns a
	// *MessageNotFoundError when the provider has no message with that id.
	ReadMessage(ctx context.Context, addr address.Address, id int) (*mail.Message, error)

	// AttachmentURL returns the link from which an attachment can be downloaded.
	AttachmentURL(addr address.Address, id int, filename string) string

	// Name returns the human-readable name of this provider.
	Name() string
}

// NetworkError is returned when the provider could not be reached or
// answered with an unexpected HTTP status.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected HTTP status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MessageNotFoundError is returned when the requested message does not exist.
type MessageNotFoundError struct {
	ID int
}

func (e *MessageNotFoundError) Error() string {
	return fmt.Sprintf("message not found: id %d", e.ID)
}

// DecodeError is returned when a response body is not the JSON the provider
// is expected to send.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
