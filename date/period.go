package date

import (
	"fmt"
	"strings"
	"time"
)

type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}

// YearStart returns January 1 of the given year.
func YearStart(year int) Date { return New(year, time.January, 1) }

// YearEnd returns December 31 of the given year.
func YearEnd(year int) Date { return New(year+1, time.January, 0) }

// QuarterEnd returns the last day of quarter q (1..4) of the given year.
func QuarterEnd(year, q int) Date {
	if q < 1 || q > 4 {
		panic(fmt.Sprintf("quarter out of range: %d", q))
	}
	return New(year, time.Month(q*3)+1, 0)
}
