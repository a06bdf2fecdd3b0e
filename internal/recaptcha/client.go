// Package recaptcha verifies client tokens against the Google siteverify
// scoring endpoint.
package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

const verifyTimeout = 10 * time.Second

var (
	// ErrUnavailable reports that the verification service could not be
	// reached or returned an unusable response.
	ErrUnavailable = errors.New("verification service unavailable")
	// ErrRejected reports that the service refused the token.
	ErrRejected = errors.New("verification rejected")
	// ErrScoreTooLow reports a successful verification whose score fell
	// below the configured threshold.
	ErrScoreTooLow = errors.New("verification score too low")
)

// Client calls the external verification endpoint. The secret and the
// threshold are fixed at construction and never mutated.
type Client struct {
	httpClient *http.Client
	verifyURL  string
	secret     string
	threshold  float64
}

func NewClient(verifyURL, secret string, threshold float64) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: verifyTimeout},
		verifyURL:  verifyURL,
		secret:     secret,
		threshold:  threshold,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify sends the token for scoring and enforces the threshold.
// Exactly one outbound call is made; nothing is retried.
func (c *Client) Verify(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, res.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: error decoding response: %v", ErrUnavailable, err)
	}

	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRejected, strings.Join(result.ErrorCodes, ", "))
	}

	// Non-scored verification flows omit the score entirely.
	if result.Score != nil && *result.Score < c.threshold {
		log.Debug().Float64("score", *result.Score).Float64("threshold", c.threshold).
			Msg("token scored below threshold")
		return fmt.Errorf("%w: score %.2f", ErrScoreTooLow, *result.Score)
	}

	return nil
}
