package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/requestid"
	"article-desk/internal/observability/metrics"
	"article-desk/internal/resilience/circuitbreaker"
	"article-desk/internal/resilience/retry"
)

// maxBodyBytes caps the JSON listing read from the media service.
const maxBodyBytes = 1 << 20

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("media service unavailable")

// Config contains configuration for the HTTP media lookup.
type Config struct {
	// BaseURL is the media service root, e.g. http://media.internal
	BaseURL string

	// Timeout bounds a single HTTP attempt
	Timeout time.Duration

	// RequestsPerSecond and Burst configure the outbound token bucket
	RequestsPerSecond float64
	Burst             int

	Retry   retry.Config
	Breaker circuitbreaker.Config
}

// DefaultConfig returns a configuration for baseURL with the package defaults.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 20,
		Burst:             40,
		Retry:             retry.MediaLookupConfig(),
		Breaker:           circuitbreaker.MediaLookupConfig(),
	}
}

// Client looks up attachments over HTTP:
//
//	GET {BaseURL}/articles/{id}/files  ->  200 [FileInfo...]
//
// A 404 means the article has no attachments.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
	breaker     *circuitbreaker.CircuitBreaker
	retry       retry.Config
}

// NewClient creates a Client. httpClient may be nil.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	onChange := cfg.Breaker.OnStateChange
	cfg.Breaker.OnStateChange = func(name string, from, to gobreaker.State) {
		metrics.SetMediaCircuitOpen(to == gobreaker.StateOpen)
		if onChange != nil {
			onChange(name, from, to)
		}
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		breaker:     circuitbreaker.New(cfg.Breaker),
		retry:       cfg.Retry,
	}
}

// Files implements Lookup.
func (c *Client) Files(ctx context.Context, articleID int64) ([]entity.FileInfo, error) {
	// 呼び出し元のリクエストIDを引き継ぐ
	requestID := requestid.FromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("media rate limiter: %w", err)
	}

	files, err := circuitbreaker.Do(c.breaker, func() ([]entity.FileInfo, error) {
		return retry.Do(ctx, c.retry, func(ctx context.Context) ([]entity.FileInfo, error) {
			return c.fetch(ctx, requestID, articleID)
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("media files for article %d: %w", articleID, ErrUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("media files for article %d: %w", articleID, err)
	}
	return files, nil
}

// CircuitState reports the breaker state ("closed", "half-open" or "open").
func (c *Client) CircuitState() string {
	return c.breaker.State().String()
}

func (c *Client) fetch(ctx context.Context, requestID string, articleID int64) ([]entity.FileInfo, error) {
	endpoint := c.baseURL + "/articles/" + url.PathEscape(strconv.FormatInt(articleID, 10)) + "/files"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	default:
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var files []entity.FileInfo
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	return files, nil
}
