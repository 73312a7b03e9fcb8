package folio

import (
	"testing"
	"time"
)

// countingSource records how often each symbol is fetched.
type countingSource struct {
	quotes StaticSource
	calls  map[string]int
}

func (c *countingSource) Quote(symbol string) (Quote, error) {
	c.calls[symbol]++
	return c.quotes.Quote(symbol)
}

func TestCachedSource_MemoizesHits(t *testing.T) {
	upstream := &countingSource{
		quotes: StaticSource{"AAPL": {Price: M(230, "USD"), PrevClose: M(228, "USD")}},
		calls:  make(map[string]int),
	}
	source := NewCachedSource(upstream, time.Minute)

	for range 3 {
		quote, err := source.Quote("AAPL")
		if err != nil {
			t.Fatalf("Quote() error = %v", err)
		}
		if !quote.Price.Equal(M(230, "USD")) {
			t.Fatalf("Quote() Price = %s, want 230", quote.Price)
		}
	}
	if upstream.calls["AAPL"] != 1 {
		t.Errorf("upstream fetched %d times, want 1", upstream.calls["AAPL"])
	}
}

func TestCachedSource_ErrorsAreNotCached(t *testing.T) {
	upstream := &countingSource{quotes: StaticSource{}, calls: make(map[string]int)}
	source := NewCachedSource(upstream, time.Minute)

	for range 2 {
		if _, err := source.Quote("MISSING"); err == nil {
			t.Fatal("Quote() error = nil, want ErrNoQuote")
		}
	}
	if upstream.calls["MISSING"] != 2 {
		t.Errorf("upstream fetched %d times, want 2, failures must retry", upstream.calls["MISSING"])
	}
}
