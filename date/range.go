package date

import (
	"fmt"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range covering the given period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// YearToQuarter returns the cumulative range from January 1 of the year
// through the end of quarter q. Reporting ranges are cumulative, not
// discrete: every one starts at the first day of the year.
func YearToQuarter(year, q int) Range {
	return Range{From: YearStart(year), To: QuarterEnd(year, q)}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
