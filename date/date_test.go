package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso", in: "2020-02-01", want: New(2020, time.February, 1)},
		{name: "permissive", in: "2020-2-1", want: New(2020, time.February, 1)},
		{name: "timestamp truncated", in: "2020-07-01T14:30:00Z", want: New(2020, time.July, 1)},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestQuarterEnd(t *testing.T) {
	testCases := []struct {
		q    int
		want Date
	}{
		{1, New(2020, time.March, 31)},
		{2, New(2020, time.June, 30)},
		{3, New(2020, time.September, 30)},
		{4, New(2020, time.December, 31)},
	}
	for _, tc := range testCases {
		if got := QuarterEnd(2020, tc.q); got != tc.want {
			t.Errorf("QuarterEnd(2020, %d) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestYearToQuarterIsCumulative(t *testing.T) {
	r := YearToQuarter(2020, 3)
	if r.From != New(2020, time.January, 1) {
		t.Errorf("From = %v, want 2020-01-01", r.From)
	}
	if r.To != New(2020, time.September, 30) {
		t.Errorf("To = %v, want 2020-09-30", r.To)
	}
	if !r.Contains(New(2020, time.February, 1)) {
		t.Error("cumulative Q3 range should contain a Q1 date")
	}
	if !r.Contains(r.To) || !r.Contains(r.From) {
		t.Error("range boundaries must be inclusive")
	}
	if r.Contains(New(2020, time.October, 1)) {
		t.Error("range must not contain a date past its end")
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "monthly", want: Monthly},
		{in: "quarter", want: Quarterly},
		{in: " Year ", want: Yearly},
		{in: "fortnight", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEndOf(t *testing.T) {
	d := New(2021, time.February, 10)
	if got := d.EndOf(Monthly); got != New(2021, time.February, 28) {
		t.Errorf("EndOf(Monthly) = %v", got)
	}
	if got := d.EndOf(Quarterly); got != New(2021, time.March, 31) {
		t.Errorf("EndOf(Quarterly) = %v", got)
	}
	if got := d.EndOf(Yearly); got != New(2021, time.December, 31) {
		t.Errorf("EndOf(Yearly) = %v", got)
	}
}
