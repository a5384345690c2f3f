// Package pagination implements page/limit parameters for list endpoints.
// Pages are 1-based.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Config holds the bounds applied to page and limit.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination bounds.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// Params is a requested page.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams reads "page" and "limit" from the query string.
// Absent values take the configured defaults; malformed or out of range values are errors.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// WithDefaults fills in zero values and clamps the limit.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}

// Offset is the SQL OFFSET for the page.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

// CalculateOffset returns (page - 1) * limit.
func CalculateOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit), and 1 for an empty result.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Metadata describes the page returned to the client.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMetadata builds Metadata for params and a total item count.
func NewMetadata(params Params, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: CalculateTotalPages(total, params.Limit),
	}
}

// Response is the JSON envelope of a paginated list.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse wraps data and metadata. A nil slice is encoded as [].
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
