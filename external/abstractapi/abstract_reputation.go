package abstractapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"UniqueSeriesAPI/internal/services"
)

// AbstractReputationValidator rejects throwaway addresses at registration so
// order confirmations do not bounce.
type AbstractReputationValidator struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewAbstractReputationValidator() (*AbstractReputationValidator, error) {
	key := os.Getenv("ABSTRACT_EMAIL_API_KEY")
	if key == "" {
		return nil, errors.New("ABSTRACT_EMAIL_API_KEY not set")
	}

	return &AbstractReputationValidator{
		apiKey:  key,
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: "https://emailreputation.abstractapi.com/v1/",
	}, nil
}

type reputationResponse struct {
	EmailReputation string `json:"email_reputation"` // LOW, MEDIUM, HIGH
	IsDisposable    bool   `json:"is_disposable_email"`
}

func (v *AbstractReputationValidator) Validate(ctx context.Context, email string) error {
	u, _ := url.Parse(v.baseURL)
	q := u.Query()
	q.Set("api_key", v.apiKey)
	q.Set("email", email)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email reputation service error: %s", resp.Status)
	}

	var out reputationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}

	if out.IsDisposable {
		return fmt.Errorf("%w: disposable email is not allowed", services.ErrValidation)
	}
	if out.EmailReputation == "LOW" {
		return fmt.Errorf("%w: email reputation is too low", services.ErrValidation)
	}

	return nil
}
