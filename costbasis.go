package folio

import "fmt"

// CostBasisMethod selects how the cost of sold units is computed when
// realizing profit.
type CostBasisMethod int

const (
	// AverageCost carries a single weighted-average unit cost per position.
	AverageCost CostBasisMethod = iota
	// FIFO consumes purchase lots strictly oldest-first.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}
