// Package recordclient posts finished orders and appointments to the record
// service. Calls are best-effort: a tripped breaker or a failed request is
// reported to the caller and never retried.
package recordclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/fjod/go_techstore/internal/checkout"
	"github.com/fjod/go_techstore/internal/schedule"
)

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func New(baseURL string, timeout time.Duration) *Client {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "record-service",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

type createResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// CreateOrder posts the order and returns the id the record service stored.
func (c *Client) CreateOrder(ctx context.Context, order checkout.Order) (string, error) {
	return c.create(ctx, "/api/orders", order)
}

// CreateAppointment posts the appointment and returns the stored id.
func (c *Client) CreateAppointment(ctx context.Context, appt schedule.Appointment) (string, error) {
	return c.create(ctx, "/api/appointments", appt)
}

// ListOrders returns the raw order records, most-recently-created first.
func (c *Client) ListOrders(ctx context.Context) ([]json.RawMessage, error) {
	return c.list(ctx, "/api/orders")
}

// ListAppointments returns the raw appointment records, most-recently-created
// first.
func (c *Client) ListAppointments(ctx context.Context) ([]json.RawMessage, error) {
	return c.list(ctx, "/api/appointments")
}

func (c *Client) create(ctx context.Context, path string, record any) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record failed: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}

	var resp createResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode response failed: %w", err)
	}
	return resp.ID, nil
}

func (c *Client) list(ctx context.Context, path string) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode records failed: %w", err)
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return nil, fmt.Errorf("build request failed: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("record service request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response failed: %w", err)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("record service returned %d", resp.StatusCode)
		}
		return body, nil
	})
}
