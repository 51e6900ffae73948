package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	saveDataPath    = "/saveData"
	requestIDHeader = "X-Request-ID"
)

// collectorの /saveData へ送るボディ
type SaveDataRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// collectorへ {key, value} を届けるHTTPクライアント。
// タイムアウトは付けない（呼び出し側のctxで止める）。
type Client struct {
	baseURL string
	http    *http.Client
}

// DI
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
	}
}

// 1回だけ送る。2xxかつJSONで返ってきたら成功。
func (c *Client) Deliver(ctx context.Context, key string, value string) error {
	body, err := json.Marshal(SaveDataRequest{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("collector: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+saveDataPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("collector: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("collector: post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("collector: read response: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("collector: invalid json response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if m, ok := parsed.(map[string]any); ok {
			if msg, ok := m["error"].(string); ok && msg != "" {
				return fmt.Errorf("collector: status %d: %s", resp.StatusCode, msg)
			}
		}
		return fmt.Errorf("collector: status %d", resp.StatusCode)
	}

	return nil
}
