package date

import "time"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Year returns the range covering a whole calendar year.
func Year(y int) Range {
	return Range{
		From: New(y, time.January, 1),
		To:   New(y, time.December, 31),
	}
}

// Contains returns true when the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }
