// Package client provides an HTTP client for the taskdeck API. It speaks
// the server's envelope protocol and normalizes transport, decode, and
// application failures into a single error shape the UI can display.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/taskdeck/internal/api"
	"github.com/phrazzld/taskdeck/internal/api/shared"
)

// defaultTimeout bounds each request when the caller's context carries
// no deadline of its own.
const defaultTimeout = 10 * time.Second

// Client calls the task API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL. A trailing slash on
// baseURL is tolerated.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// APIError is the normalized failure for any client call: a request that
// never reached the server, an undecodable response, and an envelope with
// success=false all land here. Message is safe to show to the user.
type APIError struct {
	StatusCode int
	Message    string
	Violations []shared.FieldError
}

func (e *APIError) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// IsNotFound reports whether the failure was a 404 from the server.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// FetchTasks retrieves every task, in the server's due-date order.
func (c *Client) FetchTasks(ctx context.Context) ([]api.TaskResponse, error) {
	var tasks []api.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []api.TaskResponse{}
	}
	return tasks, nil
}

// CreateTask submits a new task and returns the stored document.
func (c *Client) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskResponse, error) {
	var task api.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to the task with the given id and
// returns the updated document.
func (c *Client) UpdateTask(ctx context.Context, id string, req api.UpdateTaskRequest) (*api.TaskResponse, error) {
	var task api.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

// do runs one request/response cycle against the API. A non-nil body is
// sent as JSON; a non-nil out receives the envelope's data field.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "could not reach the server, is it running?"}
	}
	defer func() { _ = resp.Body.Close() }()

	var env struct {
		Success bool               `json:"success"`
		Data    json.RawMessage    `json:"data"`
		Message string             `json:"message"`
		Errors  []shared.FieldError `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response from server (status %d)", resp.StatusCode),
		}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Violations: env.Errors,
		}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    "could not decode server response",
			}
		}
	}
	return nil
}
