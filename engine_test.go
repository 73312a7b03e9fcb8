package folio

import (
	"testing"
	"time"

	"github.com/hyejin/folio/date"
)

// trade builds a trade with the amount derived from quantity and unit price.
func trade(day date.Date, account, symbol string, side TradeSide, quantity, price, fee float64) Trade {
	return Trade{
		Account:   account,
		Symbol:    symbol,
		Date:      day,
		Side:      side,
		Quantity:  Q(quantity),
		UnitPrice: M(price, "KRW"),
		Amount:    M(quantity*price, "KRW"),
		Fee:       M(fee, "KRW"),
	}
}

func TestReplay_WeightedAverage(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	feb := date.New(2025, time.February, 10)

	positions := Replay([]Trade{
		trade(jan, "Main", "005930", Buy, 10, 100, 10),
		trade(feb, "Main", "005930", Buy, 10, 200, 20),
	})
	if len(positions) != 1 {
		t.Fatalf("Replay() returned %d positions, want 1", len(positions))
	}
	pos := positions[0]
	if !pos.Quantity.Equal(Q(20)) {
		t.Errorf("Quantity = %s, want 20", pos.Quantity)
	}
	// (1000+10 + 2000+20) / 20 = 151.5, fees fold into the average
	if !pos.AvgCost.Equal(M(151.5, "KRW")) {
		t.Errorf("AvgCost = %s, want 151.50", pos.AvgCost)
	}
}

func TestReplay_SellKeepsAverageCost(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	feb := date.New(2025, time.February, 10)
	mar := date.New(2025, time.March, 10)

	positions := Replay([]Trade{
		trade(jan, "Main", "AAPL", Buy, 10, 100, 0),
		trade(feb, "Main", "AAPL", Buy, 10, 200, 0),
		trade(mar, "Main", "AAPL", Sell, 5, 300, 50),
	})
	pos := positions[0]
	if !pos.AvgCost.Equal(M(150, "KRW")) {
		t.Errorf("AvgCost after sell = %s, want 150 unchanged", pos.AvgCost)
	}
	if !pos.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", pos.Quantity)
	}
	// (300-150)*5 - 50
	if !pos.Realized.Equal(M(700, "KRW")) {
		t.Errorf("Realized = %s, want 700", pos.Realized)
	}
}

func TestReplay_FullSellDown(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	feb := date.New(2025, time.February, 10)

	positions := Replay([]Trade{
		trade(jan, "Main", "AAPL", Buy, 10, 100, 0),
		trade(feb, "Main", "AAPL", Sell, 10, 120, 0),
	})
	pos := positions[0]
	if !pos.Quantity.IsZero() {
		t.Errorf("Quantity = %s, want 0 after full sell down", pos.Quantity)
	}
	if !pos.Realized.Equal(M(200, "KRW")) {
		t.Errorf("Realized = %s, want 200", pos.Realized)
	}
}

func TestReplay_OversellGoesNegative(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	feb := date.New(2025, time.February, 10)

	positions := Replay([]Trade{
		trade(jan, "Main", "AAPL", Buy, 5, 100, 0),
		trade(feb, "Main", "AAPL", Sell, 8, 100, 0),
	})
	if !positions[0].Quantity.Equal(Q(-3)) {
		t.Errorf("Quantity = %s, want -3", positions[0].Quantity)
	}
}

func TestReplay_ZeroQuantityBuyKeepsZeroAverage(t *testing.T) {
	jan := date.New(2025, time.January, 10)

	positions := Replay([]Trade{
		{Account: "Main", Symbol: "AAPL", Date: jan, Side: Buy, Quantity: Q(0), Amount: M(0, "KRW")},
	})
	if !positions[0].AvgCost.IsZero() {
		t.Errorf("AvgCost = %s, want 0 on zero divisor", positions[0].AvgCost)
	}
}

func TestRealizedProfit_FIFOVersusAverage(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	feb := date.New(2025, time.February, 10)
	mar := date.New(2025, time.March, 10)

	trades := []Trade{
		trade(jan, "Main", "AAPL", Buy, 10, 100, 0),
		trade(feb, "Main", "AAPL", Buy, 10, 200, 0),
		trade(mar, "Main", "AAPL", Sell, 15, 300, 0),
	}

	// FIFO consumes the 100-lot fully and half the 200-lot:
	// 4500 - (1000 + 1000) = 2500
	if got := RealizedProfit(trades, FIFO); !got.Equal(M(2500, "KRW")) {
		t.Errorf("RealizedProfit(FIFO) = %s, want 2500", got)
	}
	// Average cost is 150: (300-150)*15 = 2250
	if got := RealizedProfit(trades, AverageCost); !got.Equal(M(2250, "KRW")) {
		t.Errorf("RealizedProfit(AverageCost) = %s, want 2250", got)
	}
}

func TestPricePositions_FailedQuoteIsIsolated(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	quotes := StaticSource{
		"AAPL": {Price: M(110, "KRW"), PrevClose: M(100, "KRW")},
		"GOOG": {Price: M(220, "KRW"), PrevClose: M(200, "KRW")},
	}

	positions := ComputeLots([]Trade{
		trade(jan, "Main", "AAPL", Buy, 10, 100, 0),
		trade(jan, "Main", "GOOG", Buy, 10, 200, 0),
		trade(jan, "Main", "MSFT", Buy, 10, 300, 0),
	}, quotes)

	bysym := make(map[string]Position)
	for _, pos := range positions {
		bysym[pos.Symbol] = pos
	}
	if !bysym["MSFT"].MarketValue.IsZero() {
		t.Errorf("MSFT MarketValue = %s, want 0 on quote failure", bysym["MSFT"].MarketValue)
	}
	if !bysym["AAPL"].MarketValue.Equal(M(1100, "KRW")) {
		t.Errorf("AAPL MarketValue = %s, want 1100", bysym["AAPL"].MarketValue)
	}
	if !bysym["GOOG"].TodayProfit.Equal(M(200, "KRW")) {
		t.Errorf("GOOG TodayProfit = %s, want 200", bysym["GOOG"].TodayProfit)
	}
}

func TestPricePositions_MarkOverridesQuotes(t *testing.T) {
	jan := date.New(2025, time.January, 10)
	fund := trade(jan, "Pension", "FUND01", Buy, 100, 10, 0)
	fund.Mark = M(12, "KRW")

	positions := ComputeLots([]Trade{fund}, StaticSource{
		"FUND01": {Price: M(99, "KRW"), PrevClose: M(99, "KRW")},
	})
	pos := positions[0]
	if !pos.Price.Equal(M(12, "KRW")) {
		t.Errorf("Price = %s, want the recorded mark 12", pos.Price)
	}
	if !pos.TodayProfit.IsZero() {
		t.Errorf("TodayProfit = %s, want 0 for a marked instrument", pos.TodayProfit)
	}
}
