package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/terzigolu/taskboard-go/internal/auth"
	"github.com/terzigolu/taskboard-go/internal/config"
	"github.com/terzigolu/taskboard-go/internal/models"
)

// Client talks to the taskboard API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a new API client. The base URL comes from the
// TASKBOARD_API_URL environment variable or the CLI config; the token, if
// any, from the token store.
func NewClient() *Client {
	baseURL := os.Getenv("TASKBOARD_API_URL")
	if baseURL == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			baseURL = cfg.APIBaseURL
		} else {
			baseURL = config.DefaultBaseURL
		}
	}

	token, _ := auth.LoadToken()

	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login authenticates with the server and returns the issued token.
func (c *Client) Login(username, password string) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	data, err := c.request(http.MethodPost, "/auth/login", body, false)
	if err != nil {
		return nil, err
	}

	var result models.LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &result, nil
}

// Validate checks the stored token against the server.
func (c *Client) Validate() (*models.ValidateResult, error) {
	data, err := c.request(http.MethodGet, "/auth/validate", nil, true)
	if err != nil {
		return nil, err
	}

	var result models.ValidateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode validate response: %w", err)
	}
	return &result, nil
}

// ListTasks fetches the tasks visible to the authenticated user.
func (c *Client) ListTasks(includeTodos bool) ([]models.Task, error) {
	endpoint := "/tasks"
	if includeTodos {
		endpoint += "?include_todos=1"
	}
	data, err := c.request(http.MethodGet, endpoint, nil, true)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// ListTodos fetches the todos visible to the authenticated user.
func (c *Client) ListTodos() ([]models.Todo, error) {
	data, err := c.request(http.MethodGet, "/todos", nil, true)
	if err != nil {
		return nil, err
	}

	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return todos, nil
}

// request makes an HTTP request and returns the response body
func (c *Client) request(method, endpoint string, body interface{}, authed bool) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authed {
		if c.Token == "" {
			return nil, fmt.Errorf("not logged in; run 'taskboard login' first")
		}
		req.Header.Set("Authorization", "Token "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiError struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &apiError); err == nil && apiError.Error != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiError.Error)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
