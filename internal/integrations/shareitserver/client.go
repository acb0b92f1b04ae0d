package shareitserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Заголовки ответа server, которые передаются клиенту
var relayedHeaders = []string{"Content-Type", RequestIDHeader}

// Client клиент для server-приложения ShareIt
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Forward выполняет запрос к server и возвращает его статус и тело как есть.
// Ответы 4xx/5xx ошибкой не считаются
func (c *Client) Forward(ctx context.Context, fr *ForwardRequest) (*Response, error) {
	target := c.baseURL + fr.Path
	if fr.RawQuery != "" {
		target += "?" + fr.RawQuery
	}

	var body io.Reader
	if len(fr.Body) > 0 {
		body = bytes.NewReader(fr.Body)
	}

	req, err := http.NewRequestWithContext(ctx, fr.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if fr.UserID != "" {
		req.Header.Set(UserIDHeader, fr.UserID)
	}
	if fr.RequestID != "" {
		req.Header.Set(RequestIDHeader, fr.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			c.log.Error("Forward: %s %s failed: %v", fr.Method, fr.Path, err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrInvalidResponse, err)
	}

	header := make(http.Header)
	for _, name := range relayedHeaders {
		if v := resp.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}

	c.log.Info("Forward: %s %s -> %d", fr.Method, fr.Path, resp.StatusCode)
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       data,
	}, nil
}
