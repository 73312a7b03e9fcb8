package folio

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCachedClientHitsServerOncePerDay(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := newCachedClient(dir)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(srv.URL + "/quote")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("get %d: body = %q", i, body)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}

	// a second client sharing the directory reuses the entry
	other := newCachedClient(dir)
	if _, err := other.Get(srv.URL + "/quote"); err != nil {
		t.Fatalf("shared cache get: %v", err)
	}
	if hits != 1 {
		t.Errorf("server hits after shared client = %d, want 1", hits)
	}
}

func TestCachedClientSkipsErrorResponses(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newCachedClient(t.TempDir())
	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusTooManyRequests {
			t.Errorf("get %d: status = %d", i, resp.StatusCode)
		}
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2: error responses must not be cached", hits)
	}
}
