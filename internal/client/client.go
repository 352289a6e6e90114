// Package client implements the orchestrator's collaborator interfaces over
// the internal HTTP APIs of the leaf services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

type base struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func newBase(baseURL, apiKey string, timeout time.Duration) base {
	return base{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// apiError is a non-2xx response from a collaborator, carrying its stable
// error code for the caller to translate.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("collaborator returned %d (%s): %s", e.Status, e.Code, e.Message)
}

// doJSON performs one request against a collaborator. Transport failures,
// timeouts and 5xx responses all come back as ErrDownstreamUnavailable; 4xx
// responses come back as *apiError for per-endpoint translation.
func (b *base) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("X-API-Key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", payment.ErrDownstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s %s returned %d",
			payment.ErrDownstreamUnavailable, method, path, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb api.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
			return &apiError{Status: resp.StatusCode}
		}

		return &apiError{Status: resp.StatusCode, Code: eb.Code, Message: eb.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// translate maps a collaborator's stable error code to a domain sentinel.
// Codes without a mapping pass through as the raw *apiError.
func translate(err error, mapping map[string]error) error {
	var ae *apiError
	if !errors.As(err, &ae) {
		return err
	}

	if mapped, ok := mapping[ae.Code]; ok {
		return fmt.Errorf("%w: %s", mapped, ae.Message)
	}

	return err
}
