package folio

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrNoQuote reports that a source has no quote for the requested symbol.
var ErrNoQuote = errors.New("no quote available")

// Quote is the latest market observation for one instrument.
type Quote struct {
	Price     Money
	PrevClose Money
}

// QuoteSource resolves a symbol to its latest quote.
type QuoteSource interface {
	Quote(symbol string) (Quote, error)
}

// StaticSource serves quotes from a fixed map, for offline valuation and
// tests. Unknown symbols report an error like any live source would.
type StaticSource map[string]Quote

func (s StaticSource) Quote(symbol string) (Quote, error) {
	quote, ok := s[symbol]
	if !ok {
		return Quote{}, ErrNoQuote
	}
	return quote, nil
}

// CachedSource memoizes quotes from an underlying source for a fixed
// duration. Errors are not cached, a failed symbol is retried on the next
// call.
type CachedSource struct {
	source QuoteSource
	cache  *gocache.Cache
}

// NewCachedSource wraps source with an in-memory cache whose entries expire
// after ttl.
func NewCachedSource(source QuoteSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedSource) Quote(symbol string) (Quote, error) {
	if cached, found := c.cache.Get(symbol); found {
		return cached.(Quote), nil
	}
	quote, err := c.source.Quote(symbol)
	if err != nil {
		return Quote{}, err
	}
	c.cache.Set(symbol, quote, gocache.DefaultExpiration)
	return quote, nil
}
