package folio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyejin/folio/date"
)

const tradesCSV = `account,date,symbol,name,type,side,quantity,price,amount,fee,mark
Main,2025-01-10,005930,Samsung Electronics,stock,buy,10,60000,600000,150,
US,2025-02-03,AAPL,Apple,stock,sell,5,230,1150,1.2,
Pension,2025-03-02,FUND01,Index Fund,fund,buy,100,1000,100000,0,1050
`

func TestDecodeTrades(t *testing.T) {
	trades, err := DecodeTrades(strings.NewReader(tradesCSV), "KRW")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("DecodeTrades() returned %d trades, want 3", len(trades))
	}
	first := trades[0]
	if first.Account != "Main" || first.Symbol != "005930" || first.Side != Buy {
		t.Errorf("first trade = %+v", first)
	}
	if first.Date != date.New(2025, time.January, 10) {
		t.Errorf("Date = %s, want 2025-01-10", first.Date)
	}
	if !first.Fee.Equal(M(150, "KRW")) {
		t.Errorf("Fee = %s, want 150", first.Fee)
	}
	// the empty mark column decodes to zero
	if !first.Mark.IsZero() {
		t.Errorf("Mark = %s, want 0", first.Mark)
	}
	if !trades[2].Mark.Equal(M(1050, "KRW")) {
		t.Errorf("fund Mark = %s, want 1050", trades[2].Mark)
	}
}

func TestDecodeTrades_MalformedNumberIsZero(t *testing.T) {
	in := "account,date,symbol,name,type,side,quantity,price,amount,fee,mark\n" +
		"Main,2025-01-10,AAPL,Apple,stock,buy,abc,100,1000,n/a,\n"
	trades, err := DecodeTrades(strings.NewReader(in), "KRW")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if !trades[0].Quantity.IsZero() {
		t.Errorf("Quantity = %s, want 0 for a malformed cell", trades[0].Quantity)
	}
	if !trades[0].Fee.IsZero() {
		t.Errorf("Fee = %s, want 0 for a malformed cell", trades[0].Fee)
	}
}

func TestDecodeTrades_UnknownSideIsError(t *testing.T) {
	in := "account,date,symbol,name,type,side,quantity,price,amount,fee,mark\n" +
		"Main,2025-01-10,AAPL,Apple,stock,short,1,100,100,0,\n"
	if _, err := DecodeTrades(strings.NewReader(in), "KRW"); err == nil {
		t.Fatal("DecodeTrades() error = nil, want unknown side error")
	}
}

func TestDecodeCash(t *testing.T) {
	in := "account,date,direction,amount\n" +
		"Main,2025-01-02,deposit,1000000\n" +
		"Main,2025-02-02,withdrawal,250000\n"
	cash, err := DecodeCash(strings.NewReader(in), "KRW")
	if err != nil {
		t.Fatalf("DecodeCash() error = %v", err)
	}
	if !NetDeposits(cash).Equal(M(750000, "KRW")) {
		t.Errorf("NetDeposits() = %s, want 750000", NetDeposits(cash))
	}
}

func TestDecodeRates(t *testing.T) {
	in := "date,rate\n" +
		"2025-01-02,1450.5\n" +
		"not-a-date,1460\n" +
		"2025-01-03,1455\n"
	rates, err := DecodeRates(strings.NewReader(in), "USD", "KRW")
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	// the malformed date row is dropped
	if rates.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rates.Len())
	}
	if got := rates.On(date.New(2025, time.January, 3)); got.InexactFloat64() != 1455 {
		t.Errorf("On(Jan 3) = %s, want 1455", got)
	}
}

func TestOpenLedger(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trades.csv"), []byte(tradesCSV), 0600); err != nil {
		t.Fatal(err)
	}
	// cash.csv and dividends.csv are deliberately absent

	ledger, err := OpenLedger(dir, "KRW")
	if err != nil {
		t.Fatalf("OpenLedger() error = %v", err)
	}
	if len(ledger.Trades) != 3 {
		t.Errorf("Trades = %d, want 3", len(ledger.Trades))
	}
	if len(ledger.Cash) != 0 {
		t.Errorf("Cash = %d, want 0 for a missing file", len(ledger.Cash))
	}
	if got := ledger.Accounts(); len(got) != 3 {
		t.Errorf("Accounts() = %v, want 3 accounts", got)
	}
	if got := ledger.TradesFor("US"); len(got) != 1 || got[0].Symbol != "AAPL" {
		t.Errorf("TradesFor(US) = %+v", got)
	}
}

func TestOpenLedger_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	broken := "account,date,direction,amount\nMain,2025-01-02,deposit\n"
	if err := os.WriteFile(filepath.Join(dir, "cash.csv"), []byte(broken), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenLedger(dir, "KRW"); err == nil {
		t.Fatal("OpenLedger() error = nil, want column count error")
	}
}
