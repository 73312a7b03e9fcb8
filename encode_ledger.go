package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/hyejin/folio/date"
)

// Ledger is the full set of records the engine works from. It is the one
// input whose unavailability is fatal, everything downstream degrades
// gracefully instead.
type Ledger struct {
	Trades    []Trade
	Cash      []CashMovement
	Dividends []DividendRecord
	Rates     *RateHistory // nil when no rates worksheet is present
}

// OpenLedger reads trades.csv, cash.csv and dividends.csv from dir. A missing
// file yields an empty record set, an unreadable or structurally invalid one
// is an error. All amounts are tagged with currency.
func OpenLedger(dir, currency string) (*Ledger, error) {
	ledger := &Ledger{}

	err := readCSV(filepath.Join(dir, "trades.csv"), func(r io.Reader) error {
		var err error
		ledger.Trades, err = DecodeTrades(r, currency)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = readCSV(filepath.Join(dir, "cash.csv"), func(r io.Reader) error {
		var err error
		ledger.Cash, err = DecodeCash(r, currency)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = readCSV(filepath.Join(dir, "dividends.csv"), func(r io.Reader) error {
		var err error
		ledger.Dividends, err = DecodeDividends(r, currency)
		return err
	})
	if err != nil {
		return nil, err
	}
	// the rates worksheet carries the overseas currency fixing
	err = readCSV(filepath.Join(dir, "rates.csv"), func(r io.Reader) error {
		var err error
		ledger.Rates, err = DecodeRates(r, "USD", currency)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func readCSV(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("reading ledger %s: %w", filepath.Base(path), err)
	}
	return nil
}

// TradesFor returns the trades of one account, in ledger order.
func (l *Ledger) TradesFor(account string) []Trade {
	var own []Trade
	for _, t := range l.Trades {
		if t.Account == account {
			own = append(own, t)
		}
	}
	return own
}

// CashFor returns the cash movements of one account, in ledger order.
func (l *Ledger) CashFor(account string) []CashMovement {
	var own []CashMovement
	for _, mv := range l.Cash {
		if mv.Account == account {
			own = append(own, mv)
		}
	}
	return own
}

// Accounts returns the distinct account names across all record kinds, in
// ledger order of first appearance.
func (l *Ledger) Accounts() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, t := range l.Trades {
		add(t.Account)
	}
	for _, mv := range l.Cash {
		add(mv.Account)
	}
	for _, div := range l.Dividends {
		add(div.Account)
	}
	return names
}

// DecodeTrades reads trade records from CSV with the header
// account,date,symbol,name,type,side,quantity,price,amount,fee,mark.
// Malformed numeric cells decode to zero, a bad record shape is an error.
func DecodeTrades(r io.Reader, currency string) ([]Trade, error) {
	rows, err := csvRows(r, 11)
	if err != nil {
		return nil, err
	}
	trades := make([]Trade, 0, len(rows))
	for _, row := range rows {
		side, err := ParseTradeSide(row[5])
		if err != nil {
			return nil, err
		}
		trades = append(trades, Trade{
			Account:   row[0],
			Date:      lenientDate(row[1]),
			Symbol:    row[2],
			Name:      row[3],
			AssetType: row[4],
			Side:      side,
			Quantity:  Quantity{value: lenientDecimal(row[6])},
			UnitPrice: M(lenientDecimal(row[7]), currency),
			Amount:    M(lenientDecimal(row[8]), currency),
			Fee:       M(lenientDecimal(row[9]), currency),
			Mark:      M(lenientDecimal(row[10]), currency),
		})
	}
	return trades, nil
}

// DecodeCash reads cash movements from CSV with the header
// account,date,direction,amount.
func DecodeCash(r io.Reader, currency string) ([]CashMovement, error) {
	rows, err := csvRows(r, 4)
	if err != nil {
		return nil, err
	}
	movements := make([]CashMovement, 0, len(rows))
	for _, row := range rows {
		direction, err := ParseCashDirection(row[2])
		if err != nil {
			return nil, err
		}
		movements = append(movements, CashMovement{
			Account:   row[0],
			Date:      lenientDate(row[1]),
			Direction: direction,
			Amount:    M(lenientDecimal(row[3]), currency),
		})
	}
	return movements, nil
}

// DecodeDividends reads dividend records from CSV with the header
// account,amount.
func DecodeDividends(r io.Reader, currency string) ([]DividendRecord, error) {
	rows, err := csvRows(r, 2)
	if err != nil {
		return nil, err
	}
	dividends := make([]DividendRecord, 0, len(rows))
	for _, row := range rows {
		dividends = append(dividends, DividendRecord{
			Account: row[0],
			Amount:  M(lenientDecimal(row[1]), currency),
		})
	}
	return dividends, nil
}

// DecodeRates reads an exchange-rate series from CSV with the header
// date,rate. Rows with a malformed date are dropped, a malformed rate
// records zero for that day.
func DecodeRates(r io.Reader, from, to string) (*RateHistory, error) {
	rows, err := csvRows(r, 2)
	if err != nil {
		return nil, err
	}
	history := NewRateHistory(from, to)
	for _, row := range rows {
		day := lenientDate(row[0])
		if day.IsZero() {
			continue
		}
		history.Add(day, lenientDecimal(row[1]))
	}
	return history, nil
}

// csvRows reads all records, skips the header line, and checks the column
// count.
func csvRows(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	return rows, nil
}

// lenientDecimal parses a numeric cell, yielding zero on anything malformed.
func lenientDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}
	}
	return d
}

// lenientDate parses a date cell, yielding the zero date on anything
// malformed.
func lenientDate(s string) date.Date {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}
