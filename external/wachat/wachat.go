package wachat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"
)

// Status of the chat session.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnected    Status = "connected"
)

// Client sends WhatsApp-style order notifications over a session-based chat
// gateway. The session has an explicit lifecycle: Connect once at startup,
// Disconnect at shutdown, Status for health checks. Handlers receive the
// client by reference; there is no package-level singleton.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client

	mu     sync.Mutex
	status Status
}

func NewClient() (*Client, error) {
	key := os.Getenv("WACHAT_API_KEY")
	if key == "" {
		return nil, errors.New("WACHAT_API_KEY not set")
	}
	base := os.Getenv("WACHAT_BASE_URL")
	if base == "" {
		base = "https://gate.whapi.cloud"
	}

	return &Client{
		apiKey:  key,
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
		status:  StatusDisconnected,
	}, nil
}

// Connect verifies the session is usable and marks the client connected.
func (c *Client) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("chat gateway unhealthy: " + resp.Status)
	}

	c.mu.Lock()
	c.status = StatusConnected
	c.mu.Unlock()
	return nil
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	c.status = StatusDisconnected
	c.mu.Unlock()
}

func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

type textMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendOrderMessage delivers a plain-text message to a phone number. Callers
// treat failures as non-fatal.
func (c *Client) SendOrderMessage(ctx context.Context, phone, body string) error {
	if c.Status() != StatusConnected {
		return errors.New("chat session not connected")
	}

	b, _ := json.Marshal(textMessage{To: phone, Body: body})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages/text", bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("chat send failed: " + buf.String())
	}

	return nil
}
