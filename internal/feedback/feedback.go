// Package feedback sends user reports to the feedback intake.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -destination=./mock/feedback.go -package=mock -source=feedback.go

// BugType is the type of reports sent from the bug report form.
const BugType = "bug"

// ErrRejected is returned when the intake answered with a non-2xx status.
var ErrRejected = errors.New("report rejected")

// Report ...
type Report struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	View    string `json:"view"`
	Role    string `json:"role"`
}

// Sender delivers reports.
type Sender interface {
	Send(ctx context.Context, r Report) error
}

// Client sends reports with POST <base>/feedback.
type Client struct {
	url string
	c   *http.Client
}

// NewClient returns a client of the intake at base url.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		url: strings.TrimRight(base, "/") + "/feedback",
		c: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send ...
func (c *Client) Send(ctx context.Context, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
