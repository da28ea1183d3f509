// Package onesecmail implements a Provider backed by the 1secmail HTTP API.
package onesecmail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shineum/tmpmail/internal/address"
	"github.com/shineum/tmpmail/internal/mail"
	"github.com/shineum/tmpmail/internal/provider"
)

// DefaultBaseURL is the single endpoint all API actions are sent to.
const DefaultBaseURL = "https://www.1secmail.com/api/v1/"

// Config holds the configuration for creating a Client.
type Config struct {
	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string

	// HTTPClient overrides the default transport when set.
	HTTPClient *http.Client
}

// Client talks to the 1secmail API. It performs no retries; timeouts are
// whatever the transport defaults to.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// New creates a Client with the given configuration.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "1secmail"
}

// ListMessages fetches the inbox of addr via the getMessages action.
func (c *Client) ListMessages(ctx context.Context, addr address.Address) ([]mail.Summary, error) {
	resp, err := c.get(ctx, actionGetMessages, c.query(actionGetMessages, addr))
	if err != nil {
		return nil, err
	}
	return resp.messages()
}

// ReadMessage fetches one message via the readMessage action.
func (c *Client) ReadMessage(ctx context.Context, addr address.Address, id int) (*mail.Message, error) {
	q := c.query(actionReadMessage, addr)
	q.Set("id", strconv.Itoa(id))

	resp, err := c.get(ctx, actionReadMessage, q)
	if err != nil {
		return nil, err
	}
	return resp.message(id)
}

// AttachmentURL returns the download link for an attachment of message id.
func (c *Client) AttachmentURL(addr address.Address, id int, filename string) string {
	q := c.query(actionDownload, addr)
	q.Set("id", strconv.Itoa(id))
	q.Set("file", filename)
	return c.baseURL + "?" + q.Encode()
}

func (c *Client) query(action string, addr address.Address) url.Values {
	return url.Values{
		"action": {action},
		"login":  {addr.Username},
		"domain": {addr.Domain},
	}
}

// get performs a single GET request and returns the raw body.
func (c *Client) get(ctx context.Context, op string, q url.Values) (response, error) {
	target := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}

	slog.Debug("provider request", "action", op, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, &provider.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, &provider.NetworkError{Op: op, Err: err}
	}

	slog.Debug("provider response",
		"action", op,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode != http.StatusOK {
		return response{}, &provider.NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	return response{op: op, body: body}, nil
}
