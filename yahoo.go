package folio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/hyejin/folio/date"
)

// YahooSource quotes instruments against the Yahoo Finance chart API.
// Responses are cached on disk for the day, so a batch valuation hits the
// network once per symbol.
type YahooSource struct {
	Currency string // currency the quoted instruments trade in
	client   *http.Client
}

// NewYahooSource creates a source quoting in currency.
func NewYahooSource(currency string) *YahooSource {
	return &YahooSource{Currency: currency, client: newCachedClient("")}
}

const yahooChart = "https://query1.finance.yahoo.com/v8/finance/chart/"

// getJSON performs a GET and decodes the JSON body into data.
func getJSON(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}

func (y *YahooSource) Quote(symbol string) (Quote, error) {
	addr := yahooChart + url.PathEscape(symbol) + "?interval=1d&range=5d"

	var jobj any
	if err := getJSON(y.client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	price, err := yahooFloat(jobj, "$.chart.result[0].meta.regularMarketPrice", symbol)
	if err != nil {
		return Quote{}, err
	}
	prev, err := yahooFloat(jobj, "$.chart.result[0].meta.chartPreviousClose", symbol)
	if err != nil {
		// an instrument on its first listed day has no previous close
		prev = price
	}
	return Quote{
		Price:     M(price, y.Currency),
		PrevClose: M(prev, y.Currency),
	}, nil
}

// FetchRates fills a rate history from the Yahoo chart of the pair, such as
// "USDKRW=X", over the trailing ten years of daily closes.
func FetchRates(history *RateHistory) error {
	pair := history.From + history.To + "=X"
	addr := yahooChart + url.PathEscape(pair) + "?interval=1d&range=10y"

	var jobj any
	if err := getJSON(newCachedClient(""), addr, &jobj); err != nil {
		return fmt.Errorf("error retrieving %q: %w", pair, err)
	}

	jstamps, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", pair, err)
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", pair, err)
	}
	stamps, ok1 := jstamps.([]any)
	closes, ok2 := jcloses.([]any)
	if !ok1 || !ok2 || len(stamps) != len(closes) {
		return fmt.Errorf("error parsing %q: mismatched series", pair)
	}

	for i, jstamp := range stamps {
		stamp, ok := jstamp.(float64)
		if !ok {
			continue
		}
		px, ok := closes[i].(float64)
		if !ok { // null close on a holiday
			continue
		}
		t := time.Unix(int64(stamp), 0).UTC()
		day := date.New(t.Year(), t.Month(), t.Day())
		history.Add(day, newDecimal(px))
	}
	return nil
}

// yahooFloat extracts one float from a chart response.
func yahooFloat(jobj any, path, symbol string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a float: %v", symbol, path, jval)
	}
	return val, nil
}
