package renderer

import (
	"strings"
	"testing"

	"github.com/hyejin/folio"
)

func TestSummaryMarkdown(t *testing.T) {
	s := &folio.AccountSummary{
		Name:        "Main",
		Currency:    "KRW",
		Capital:     folio.M(1000, "KRW"),
		Balance:     folio.M(1200, "KRW"),
		TotalProfit: folio.M(200, "KRW"),
		Rate:        20,
	}
	out := SummaryMarkdown(s)
	if !strings.Contains(out, "# Main Summary") {
		t.Errorf("missing title in:\n%s", out)
	}
	if !strings.Contains(out, "+20.00%") {
		t.Errorf("missing return rate in:\n%s", out)
	}
}

func TestHoldingMarkdown_SkipsSoldOut(t *testing.T) {
	s := &folio.AccountSummary{
		Name: "Main",
		Positions: []folio.Position{
			{Symbol: "AAPL", Quantity: folio.Q(10), MarketValue: folio.M(1000, "KRW")},
			{Symbol: "GONE", Quantity: folio.Q(0)},
		},
	}
	out := HoldingMarkdown(s)
	if !strings.Contains(out, "AAPL") {
		t.Errorf("missing held position in:\n%s", out)
	}
	if strings.Contains(out, "GONE") {
		t.Errorf("sold out position rendered in:\n%s", out)
	}
}

func TestWeightMarkdown(t *testing.T) {
	out := WeightMarkdown("By Asset Type", []folio.GroupEntry{
		{Key: "stock", Value: folio.M(750, "KRW"), Weight: 75, Rate: 10},
		{Key: "fund", Value: folio.M(250, "KRW"), Weight: 25},
	})
	if !strings.Contains(out, "75.00%") {
		t.Errorf("missing weight in:\n%s", out)
	}
}

func TestGainsMarkdown_EmptyPeriodHasNoTable(t *testing.T) {
	out := GainsMarkdown(2025, nil, folio.Money{})
	if !strings.Contains(out, "Realized Gains 2025") {
		t.Errorf("missing title in:\n%s", out)
	}
	if strings.Contains(out, "| Symbol") {
		t.Errorf("empty period rendered a table:\n%s", out)
	}
}
