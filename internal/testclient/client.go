// Package testclient is an HTTP and WebSocket client for the level service,
// used by the integration test scenarios in test/.
package testclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client talks to a running level service.
type Client struct {
	BaseURL    string
	http       *http.Client
	adminToken string
}

// New creates a client for the service at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAdminToken sets the bearer token sent with destructive requests.
func (c *Client) SetAdminToken(token string) {
	c.adminToken = token
}

// GenerateRequest is the body of a generation request. Nil pointer fields
// are omitted and fall back to the service's defaults.
type GenerateRequest struct {
	Name   string `json:"name"`
	XRange *Range `json:"x_range,omitempty"`
	ZRange *Range `json:"z_range,omitempty"`
	Seed   *int64 `json:"seed,omitempty"`
	Sizes  *Sizes `json:"sizes,omitempty"`
}

// Range mirrors the service's inclusive bounds pair.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Sizes mirrors the service's geometric scale.
type Sizes struct {
	RoomSide   float64 `json:"room_side"`
	WallRadius float64 `json:"wall_radius"`
}

// Room mirrors one room coordinate pair.
type Room struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Wall mirrors one wall of the level wire form.
type Wall struct {
	X           int    `json:"x"`
	Z           int    `json:"z"`
	Orientation string `json:"orientation"`
	Disposition string `json:"disposition"`
}

// Level mirrors the service's full level response.
type Level struct {
	Name          string `json:"name"`
	Seed          int64  `json:"seed"`
	XRange        Range  `json:"x_range"`
	ZRange        Range  `json:"z_range"`
	Sizes         Sizes  `json:"sizes"`
	RoomCount     int    `json:"room_count"`
	PassageCount  int    `json:"passage_count"`
	SpawnDistance int    `json:"spawn_distance"`
	Start         Room   `json:"start"`
	Goal          Room   `json:"goal"`
	Walls         []Wall `json:"walls"`
}

// Summary mirrors one entry of the level list response.
type Summary struct {
	Name          string `json:"name"`
	Seed          int64  `json:"seed"`
	XRange        Range  `json:"x_range"`
	ZRange        Range  `json:"z_range"`
	SpawnDistance int    `json:"spawn_distance"`
}

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Message)
}

// GenerateLevel asks the service to generate and store a level.
func (c *Client) GenerateLevel(req GenerateRequest) (*Level, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.http.Post(c.BaseURL+"/api/levels", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var lvl Level
	if err := json.NewDecoder(resp.Body).Decode(&lvl); err != nil {
		return nil, fmt.Errorf("failed to decode level: %w", err)
	}
	return &lvl, nil
}

// GetLevel fetches a stored level. With presentOnly the wall list is
// filtered to standing walls.
func (c *Client) GetLevel(name string, presentOnly bool) (*Level, error) {
	url := c.BaseURL + "/api/levels/" + name
	if presentOnly {
		url += "?walls=present"
	}

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var lvl Level
	if err := json.NewDecoder(resp.Body).Decode(&lvl); err != nil {
		return nil, fmt.Errorf("failed to decode level: %w", err)
	}
	return &lvl, nil
}

// ListLevels fetches the stored level summaries.
func (c *Client) ListLevels() ([]Summary, error) {
	resp, err := c.http.Get(c.BaseURL + "/api/levels")
	if err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var summaries []Summary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}
	return summaries, nil
}

// DeleteLevel removes a stored level using the configured admin token.
func (c *Client) DeleteLevel(name string) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+"/api/levels/"+name, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// Feed is an open subscription to the service's level feed.
type Feed struct {
	conn *websocket.Conn
}

// SubscribeFeed opens the WebSocket feed.
func (c *Client) SubscribeFeed() (*Feed, error) {
	wsURL := "ws" + strings.TrimPrefix(c.BaseURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed dial failed: %w", err)
	}
	return &Feed{conn: conn}, nil
}

// Next blocks until the next level arrives on the feed or the timeout passes.
func (f *Feed) Next(timeout time.Duration) (*Level, error) {
	f.conn.SetReadDeadline(time.Now().Add(timeout))

	var lvl Level
	if err := f.conn.ReadJSON(&lvl); err != nil {
		return nil, fmt.Errorf("feed read failed: %w", err)
	}
	return &lvl, nil
}

// Close closes the feed connection.
func (f *Feed) Close() error {
	return f.conn.Close()
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error == "" {
		payload.Error = strings.TrimSpace(string(data))
	}
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}
