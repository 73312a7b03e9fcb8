package folio

import "github.com/hyejin/folio/date"

// ContributionLimit caps the deposits into one account. Cumulative limits
// count every deposit ever made, annual limits only the reporting year's.
type ContributionLimit struct {
	Account    string
	Amount     Money
	Cumulative bool
}

// Statutory contribution limits for Korean tax-advantaged accounts and the
// annual tax-free allowance on overseas realized gains, all in KRW.
var (
	ISALimit        = ContributionLimit{Account: "ISA", Amount: M(40_000_000, "KRW"), Cumulative: true}
	PensionLimit    = ContributionLimit{Account: "Pension", Amount: M(3_000_000, "KRW")}
	IRPLimit        = ContributionLimit{Account: "IRP", Amount: M(7_200_000, "KRW")}
	USGainAllowance = M(2_500_000, "KRW")
)

// ContributionUsage reports how much of a contribution limit has been used.
type ContributionUsage struct {
	Account   string
	Limit     Money
	Paid      Money
	Remaining Money // floored at zero
	Used      Percent
}

// Contributions measures the deposits of the limited account against its
// limit. Withdrawals never restore headroom, only deposits count. Annual
// limits look at deposits dated in year, cumulative limits at all of them.
func Contributions(limit ContributionLimit, cash []CashMovement, year int) ContributionUsage {
	var paid Money
	for _, mv := range cash {
		if mv.Account != limit.Account || mv.Direction != Deposit {
			continue
		}
		if !limit.Cumulative && mv.Date.Year() != year {
			continue
		}
		paid = paid.Add(mv.Amount)
	}

	remaining := limit.Amount.Sub(paid)
	if remaining.IsNegative() {
		remaining = Money{}
	}
	return ContributionUsage{
		Account:   limit.Account,
		Limit:     limit.Amount,
		Paid:      paid.Round(),
		Remaining: remaining.Round(),
		Used:      rate(paid, limit.Amount).Round2(),
	}
}

// AllowanceUsage reports a year's realized gains against a tax-free
// allowance.
type AllowanceUsage struct {
	Allowance Money
	Realized  Money
	Remaining Money // negative once the allowance is exceeded
	Used      Percent
}

// GainAllowance measures the gains realized in year, FIFO matched with
// settlement dated conversion, against the allowance.
func GainAllowance(allowance Money, trades []Trade, year int, rule date.SettlementRule, fx *RateHistory) AllowanceUsage {
	_, realized := RealizedInRange(trades, date.Year(year), rule, fx)
	used := Percent(0)
	if realized.IsPositive() {
		used = rate(realized, allowance).Round2()
	}
	return AllowanceUsage{
		Allowance: allowance,
		Realized:  realized,
		Remaining: allowance.Sub(realized).Round(),
		Used:      used,
	}
}
