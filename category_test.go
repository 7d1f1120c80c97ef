package accounts

import (
	"testing"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "single segment", in: "feed", want: "feed"},
		{name: "nested", in: "sales-grain-corn", want: "sales-grain-corn"},
		{name: "empty", in: "", wantErr: true},
		{name: "empty first segment", in: "-feed", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCategory(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil {
				if !IsStructural(err) {
					t.Errorf("error should be structural, got %v", err)
				}
				return
			}
			if got.String() != tc.want {
				t.Errorf("ParseCategory(%q).String() = %q, want %q", tc.in, got.String(), tc.want)
			}
		})
	}
}

func TestCategoryHasPrefix(t *testing.T) {
	testCases := []struct {
		c, prefix string
		want      bool
	}{
		{"loan-interest-mortgage1", "loan-interest", true},
		{"loan-interest", "loan-interest", true},
		{"loan-interest2", "loan-interest", false},
		{"loan", "loan-interest", false},
	}
	for _, tc := range testCases {
		got := MustCategory(tc.c).HasPrefix(MustCategory(tc.prefix))
		if got != tc.want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", tc.c, tc.prefix, got, tc.want)
		}
	}
}

func TestCategoryCloneIsIndependent(t *testing.T) {
	orig := MustCategory("feed-corn")
	clone := orig.Clone()
	clone[0] = "mutated"
	if orig[0] != "feed" {
		t.Error("mutating a clone leaked into the original")
	}
}
