package sheet

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchRows(t *testing.T) {
	csv := "Meetup,Link,Notes\nAtlanta Go Meetup,https://example.com/go,Monthly\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, UserAgent)
		}
		w.Write([]byte(csv))
	}))
	defer server.Close()

	rows, err := NewClient(server.URL).FetchRows()
	if err != nil {
		t.Fatalf("FetchRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("FetchRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Name != "Atlanta Go Meetup" {
		t.Errorf("rows[0].Name = %q", rows[0].Name)
	}
}

func TestClient_FetchRows_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	rows, err := NewClient(server.URL).FetchRows()
	if err == nil {
		t.Fatal("FetchRows() expected error on 403, got nil")
	}
	if rows != nil {
		t.Errorf("FetchRows() returned rows on error: %v", rows)
	}
}

func TestClient_FetchRows_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before the request

	if _, err := NewClient(server.URL).FetchRows(); err == nil {
		t.Fatal("FetchRows() expected error on closed server, got nil")
	}
}

func TestNewClient_DefaultURL(t *testing.T) {
	if got := NewClient("").URL(); got != DefaultSheetURL {
		t.Errorf("NewClient(\"\").URL() = %q, want default", got)
	}
}
