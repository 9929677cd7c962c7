package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(from string) (*ResendMailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &ResendMailer{
		apiKey: key,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendWelcomeEmail greets a freshly registered customer.
func (m *ResendMailer) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	return m.send(ctx, sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "Welcome to Unique Series",
		HTML: `
			<p>Hi ` + name + `,</p>
			<p>Welcome to Unique Series! Your custom currency-note gifts are one click away.</p>
		`,
	})
}

// SendOrderConfirmation mails the checkout summary. Called best effort after
// the order transaction commits.
func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, toEmail, name, orderNumber string, total float64) error {
	return m.send(ctx, sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "Order " + orderNumber + " confirmed",
		HTML: `
			<p>Hi ` + name + `,</p>
			<p>Your order <b>` + orderNumber + `</b> is confirmed.</p>
			<p>Amount: ` + fmt.Sprintf("%.2f", total) + `</p>
			<p>We will share tracking details once it ships.</p>
		`,
	})
}

func (m *ResendMailer) send(ctx context.Context, body sendRequest) error {
	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send email: " + buf.String())
	}

	return nil
}
