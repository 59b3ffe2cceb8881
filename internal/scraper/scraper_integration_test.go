package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchTable(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantError   bool
		wantRows    int
	}{
		{
			name:        "successful fetch",
			htmlContent: perGamePage,
			statusCode:  http.StatusOK,
			wantRows:    4,
		},
		{
			name:       "HTTP error",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:        "page without table",
			htmlContent: `<html><body><p>Rate limited</p></body></html>`,
			statusCode:  http.StatusOK,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userAgent := r.Header.Get("User-Agent"); userAgent != UserAgent {
					t.Errorf("User-Agent = %q, want %q", userAgent, UserAgent)
				}
				gotPath = r.URL.Path

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			scraper := New()
			scraper.baseURL = server.URL

			tbl, err := scraper.FetchTable(2021)

			if gotPath != "/leagues/NBA_2021_per_game.html" {
				t.Errorf("requested path = %q", gotPath)
			}

			if tt.wantError {
				if err == nil {
					t.Error("FetchTable() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchTable() unexpected error: %v", err)
			}
			if tbl.Len() != tt.wantRows {
				t.Errorf("FetchTable() returned %d rows, want %d", tbl.Len(), tt.wantRows)
			}
		})
	}
}

func TestFetchTable_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	s := NewWithBaseURL(url)
	if _, err := s.FetchTable(2000); err == nil {
		t.Error("FetchTable() against closed server expected error, got nil")
	}
}
