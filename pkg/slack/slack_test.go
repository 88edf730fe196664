package slack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostDelivers(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := New(srv.URL)
	w.Username = "暦ぼっと"
	w.IconURL = "https://example.com/icon.png"

	res := w.Post("hello")
	if !res.Delivered {
		t.Fatalf("Post() = %v, want delivered", res)
	}
	if got.Text != "hello" || got.Username != "暦ぼっと" || got.IconURL != "https://example.com/icon.png" {
		t.Errorf("payload = %+v", got)
	}
}

func TestPostReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer srv.Close()

	res := New(srv.URL).Post("hello")
	if res.Delivered {
		t.Error("Post() delivered on a 404")
	}
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", res.StatusCode)
	}
}

func TestPostReportsTransportError(t *testing.T) {
	// A closed server refuses the connection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := New(srv.URL).Post("hello")
	if res.Delivered {
		t.Error("Post() delivered over a dead connection")
	}
	if res.Err == nil {
		t.Error("Err not set on transport failure")
	}
}

func TestResultString(t *testing.T) {
	table := []struct {
		res  DeliveryResult
		want string
	}{
		{DeliveryResult{Delivered: true, StatusCode: 200}, "delivered"},
		{DeliveryResult{StatusCode: 500}, "failed: status 500"},
	}
	for _, tc := range table {
		if got := tc.res.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
