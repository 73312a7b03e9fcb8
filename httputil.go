package folio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/hyejin/folio/date"
)

// dayTransport caches successful GET responses on disk, keyed by request URL
// and the current day. Quote services publish one close per day, so a stale
// entry simply expires at midnight with no eviction logic.
type dayTransport struct {
	dir  string // cache directory, one file per entry
	next http.RoundTripper
}

// newCachedClient returns a client whose responses are cached under dir for
// the rest of the day. An empty dir falls back to the system temp directory.
func newCachedClient(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &dayTransport{dir: dir, next: http.DefaultTransport}}
}

func (d *dayTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	file := d.entry(req)
	if resp, err := readEntry(file, req); err == nil {
		return resp, nil
	}

	resp, err := d.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := writeEntry(file, resp); err != nil {
		log.Printf("quote cache write failed (ignored): %v", err)
	}
	return resp, nil
}

// entry builds the cache file path for req, valid for today only.
func (d *dayTransport) entry(req *http.Request) string {
	sum := sha1.Sum([]byte(date.Today().String() + " " + req.Method + " " + req.URL.String()))
	return filepath.Join(d.dir, fmt.Sprintf("q%x", sum))
}

func readEntry(file string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// writeEntry dumps the full response to file. DumpResponse replaces the body
// with a fresh reader, so the caller can still consume it afterwards.
func writeEntry(file string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(file, content, 0o644)
}
