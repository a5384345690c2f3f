package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantID    int64
		wantError error
	}{
		{name: "valid ID", value: "123", wantID: 123},
		{name: "max int64", value: "9223372036854775807", wantID: 9223372036854775807},
		{name: "not a number", value: "abc", wantError: ErrInvalidID},
		{name: "zero", value: "0", wantError: ErrInvalidID},
		{name: "negative", value: "-1", wantError: ErrInvalidID},
		{name: "overflow", value: "9223372036854775808", wantError: ErrInvalidID},
		{name: "empty", value: "", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/articles/x", nil)
			req.SetPathValue("id", tt.value)

			id, err := ParseID(req, "id")
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("err = %v, want %v", err, tt.wantError)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestParseID_ThroughMux(t *testing.T) {
	var got int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got = id
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/articles/42", nil))

	if rr.Code != http.StatusOK || got != 42 {
		t.Fatalf("code=%d id=%d, want 200 and 42", rr.Code, got)
	}
}
