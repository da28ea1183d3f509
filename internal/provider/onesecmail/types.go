package onesecmail

import (
	"bytes"
	"encoding/json"

	"github.com/shineum/tmpmail/internal/mail"
	"github.com/shineum/tmpmail/internal/provider"
)

// notFoundBody is the literal plain-text body the API sends in place of a
// message that does not exist. It arrives with HTTP 200.
const notFoundBody = "Message not found"

// API actions, passed in the "action" query parameter.
const (
	actionGetMessages = "getMessages"
	actionReadMessage = "readMessage"
	actionDownload    = "download"
)

// response wraps a raw response body. The API multiplexes its not-found
// signal onto the success payload, so the sentinel is checked before any
// JSON decoding.
type response struct {
	op   string
	body []byte
}

// notFound reports whether the body is the not-found sentinel.
func (r response) notFound() bool {
	return string(bytes.TrimSpace(r.body)) == notFoundBody
}

// decode unmarshals the body into v, wrapping failures in a DecodeError.
func (r response) decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return &provider.DecodeError{Op: r.op, Err: err}
	}
	return nil
}

// messages decodes a getMessages response. A JSON null is treated as an
// empty inbox.
func (r response) messages() ([]mail.Summary, error) {
	var summaries []mail.Summary
	if err := r.decode(&summaries); err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []mail.Summary{}
	}
	return summaries, nil
}

// message decodes a readMessage response, surfacing the not-found sentinel
// as a typed error.
func (r response) message(id int) (*mail.Message, error) {
	if r.notFound() {
		return nil, &provider.MessageNotFoundError{ID: id}
	}

	var msg mail.Message
	if err := r.decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
