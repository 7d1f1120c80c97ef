package accounts

import (
	"slices"
	"testing"
)

func TestCategorize(t *testing.T) {
	lines := []AccountTx{
		tx("2020-01-10", 100, "feed-corn", "co-op"),
		tx("2020-01-20", -50, "feed-corn", "co-op"),
		tx("2020-02-01", 30, "fuel-diesel", "station"),
	}
	tree, err := Categorize(lines)
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}

	if tree.Name != RootName {
		t.Errorf("root name = %q, want %q", tree.Name, RootName)
	}
	if len(tree.Transactions) != 0 {
		t.Errorf("root holds %d transactions, want 0", len(tree.Transactions))
	}

	corn := tree.Get("feed-corn")
	if corn == nil {
		t.Fatal("Get(feed-corn) = nil")
	}
	if len(corn.Transactions) != 2 {
		t.Errorf("feed-corn holds %d transactions, want 2", len(corn.Transactions))
	}
	// Transactions attach only at the path's terminal node.
	feed := tree.Get("feed")
	if feed == nil {
		t.Fatal("Get(feed) = nil")
	}
	if len(feed.Transactions) != 0 {
		t.Errorf("feed holds %d transactions, want 0", len(feed.Transactions))
	}
	if corn.Parent != feed {
		t.Error("feed-corn parent should be feed")
	}
	if got := corn.FullName(); got != "feed-corn" {
		t.Errorf("FullName() = %q, want %q", got, "feed-corn")
	}
}

func TestCategorizeMissingCategory(t *testing.T) {
	bad := tx("2020-01-10", 100, "feed", "co-op")
	bad.Category = nil
	bad.Acct = "checking"
	bad.Lineno = 12

	_, err := Categorize([]AccountTx{bad})
	if err == nil {
		t.Fatal("Categorize() with missing category should fail")
	}
	if !IsStructural(err) {
		t.Errorf("error should be structural, got %v", err)
	}
}

func TestCategorizeIsDeterministic(t *testing.T) {
	lines := []AccountTx{
		tx("2020-01-10", 100, "feed-corn", "co-op"),
		tx("2020-02-01", 30, "fuel-diesel", "station"),
		tx("2020-01-20", -50, "feed-corn-organic", "co-op"),
	}
	names := func(lines []AccountTx) []string {
		tree, err := Categorize(lines)
		if err != nil {
			t.Fatalf("Categorize() error = %v", err)
		}
		index := make(map[string]struct{})
		tree.CollectNames(index, NamesOptions{ExcludeRoot: true})
		var out []string
		for name := range index {
			out = append(out, name)
		}
		slices.Sort(out)
		return out
	}

	first := names(lines)
	reversed := slices.Clone(lines)
	slices.Reverse(reversed)
	second := names(reversed)

	if !slices.Equal(first, second) {
		t.Errorf("tree names depend on input order: %v vs %v", first, second)
	}
	want := []string{"feed", "feed-corn", "feed-corn-organic", "fuel", "fuel-diesel"}
	if !slices.Equal(first, want) {
		t.Errorf("names = %v, want %v", first, want)
	}
}

func TestContainsAndUnder(t *testing.T) {
	tree, err := Categorize([]AccountTx{
		tx("2020-01-10", 100, "feed-corn-organic", "co-op"),
		tx("2020-02-01", 30, "fuel-diesel", "station"),
	})
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}

	testCases := []struct {
		name string
		node string
		arg  string
		fn   string
		want bool
	}{
		{name: "contains self", node: "feed", arg: "feed", fn: "contains", want: true},
		{name: "contains descendant", node: "feed", arg: "organic", fn: "contains", want: true},
		{name: "contains sibling subtree", node: "feed", arg: "diesel", fn: "contains", want: false},
		{name: "under ancestor", node: "feed-corn-organic", arg: "feed", fn: "under", want: true},
		{name: "under is strict", node: "feed", arg: "feed", fn: "under", want: false},
		{name: "under other branch", node: "fuel-diesel", arg: "feed", fn: "under", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node := tree.Get(tc.node)
			if node == nil {
				t.Fatalf("Get(%q) = nil", tc.node)
			}
			var got bool
			if tc.fn == "contains" {
				got = node.Contains(tc.arg)
			} else {
				got = node.Under(tc.arg)
			}
			if got != tc.want {
				t.Errorf("%s(%q) on %q = %v, want %v", tc.fn, tc.arg, tc.node, got, tc.want)
			}
		})
	}
}

func TestGetAbsentSegment(t *testing.T) {
	tree, err := Categorize([]AccountTx{tx("2020-01-10", 100, "feed-corn", "co-op")})
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}
	if got := tree.Get("feed-soy"); got != nil {
		t.Errorf("Get(feed-soy) = %v, want nil", got)
	}
	if got := tree.Get(""); got != nil {
		t.Errorf("Get(\"\") = %v, want nil", got)
	}
}

func TestChildrenSorted(t *testing.T) {
	tree, err := Categorize([]AccountTx{
		tx("2020-01-10", 1, "zulu", "a"),
		tx("2020-01-10", 1, "alpha", "a"),
		tx("2020-01-10", 1, "mike", "a"),
	})
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}
	var got []string
	for c := range tree.Children() {
		got = append(got, c.Name)
	}
	want := []string{"alpha", "mike", "zulu"}
	if !slices.Equal(got, want) {
		t.Errorf("Children() order = %v, want %v", got, want)
	}
}
