package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Result is the envelope every backend endpoint answers with.
type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Toko    json.RawMessage `json:"toko,omitempty"`
}

type Backend struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Backend {
	return &Backend{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (b *Backend) do(ctx context.Context, method, path, token string, body any) (*Result, error) {
	var reader *bytes.Reader
	if body != nil {
		var payload []byte
		switch v := body.(type) {
		case json.RawMessage:
			payload = v
		default:
			var err error
			payload, err = json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return &res, nil
}
