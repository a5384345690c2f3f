// Package pathutil parses identifiers out of request paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID reads the named path wildcard set by the mux pattern
// (e.g. "{id}" in "GET /articles/{id}") and parses it as a positive int64.
//
// Example:
//
//	mux.HandleFunc("GET /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
//		id, err := pathutil.ParseID(r, "id")
//	})
func ParseID(r *http.Request, name string) (int64, error) {
	return parsePositive(r.PathValue(name))
}

func parsePositive(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
