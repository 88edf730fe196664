// Package slack posts messages to a Slack incoming webhook.
package slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Webhook posts to a single Slack incoming-webhook URL.
type Webhook struct {
	URL      string
	Username string
	IconURL  string

	// Client is used for delivery. Defaults to one with a 10s timeout.
	Client *http.Client
}

// New returns a Webhook for url with the default timeout.
func New(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: defaultTimeout},
	}
}

// payload is the incoming-webhook body.
type payload struct {
	Text     string `json:"text"`
	Username string `json:"username,omitempty"`
	IconURL  string `json:"icon_url,omitempty"`
}

// DeliveryResult reports one delivery attempt. Delivery failures are
// expected operational noise, so they travel in a value, not an error that
// aborts the run.
type DeliveryResult struct {
	Delivered bool
	// StatusCode is set when the request got a response.
	StatusCode int
	// Err is set when the request never completed.
	Err error
}

func (r DeliveryResult) String() string {
	switch {
	case r.Delivered:
		return "delivered"
	case r.Err != nil:
		return fmt.Sprintf("failed: %v", r.Err)
	default:
		return fmt.Sprintf("failed: status %d", r.StatusCode)
	}
}

// Post delivers msg to the webhook. It never panics and never returns an
// error; inspect the result for the outcome.
func (w *Webhook) Post(msg string) DeliveryResult {
	body, err := json.Marshal(payload{
		Text:     msg,
		Username: w.Username,
		IconURL:  w.IconURL,
	})
	if err != nil {
		return DeliveryResult{Err: fmt.Errorf("encode payload: %w", err)}
	}

	client := w.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := client.Post(w.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return DeliveryResult{Err: err}
	}
	defer resp.Body.Close()

	return DeliveryResult{
		Delivered:  resp.StatusCode == http.StatusOK,
		StatusCode: resp.StatusCode,
	}
}
