package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/domain/auth"
)

// GenericErrorMessage is shown when the server gives no usable error detail.
const GenericErrorMessage = "Something went wrong. Please try again."

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return GenericErrorMessage
	}
	return e.Message
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the attendance API. Token may be empty for the auth
// endpoints; everything else requires it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken switches the bearer token after login or register.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil &&
		envelope.Error != nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}

func (c *Client) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	var result auth.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &result)
	return result, err
}

func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var result auth.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &result)
	return result, err
}

func (c *Client) PunchIn(ctx context.Context) (attendance.Attendance, error) {
	var result attendance.Attendance
	err := c.do(ctx, http.MethodPost, "/attendance/punch-in", nil, &result)
	return result, err
}

func (c *Client) PunchOut(ctx context.Context) (attendance.PunchOutResponse, error) {
	var result attendance.PunchOutResponse
	err := c.do(ctx, http.MethodPost, "/attendance/punch-out", nil, &result)
	return result, err
}

func (c *Client) StartBreak(ctx context.Context) (attendance.Attendance, error) {
	var result attendance.Attendance
	err := c.do(ctx, http.MethodPost, "/attendance/start-break", nil, &result)
	return result, err
}

func (c *Client) EndBreak(ctx context.Context) (attendance.Attendance, error) {
	var result attendance.Attendance
	err := c.do(ctx, http.MethodPost, "/attendance/end-break", nil, &result)
	return result, err
}

func (c *Client) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	var result attendance.TodayStatusResponse
	err := c.do(ctx, http.MethodGet, "/attendance/today-status", nil, &result)
	return result, err
}

func (c *Client) MyHistory(ctx context.Context) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	err := c.do(ctx, http.MethodGet, "/attendance/my-history", nil, &result)
	return result, err
}

func (c *Client) TodayAllEmployees(ctx context.Context) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	err := c.do(ctx, http.MethodGet, "/attendance/all-employees", nil, &result)
	return result, err
}

func (c *Client) MonthlyReport(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	req := attendance.MonthlyReportRequest{Month: month, Year: year}
	var result []attendance.Attendance
	err := c.do(ctx, http.MethodPost, "/attendance/monthly-report", req, &result)
	return result, err
}
