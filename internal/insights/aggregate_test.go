package insights

import (
	"math"
	"testing"
)

func TestGroupTotals(t *testing.T) {
	groups, total := GroupTotals([]Entry{
		{"Food", 30},
		{"Rent", 60},
		{"Food", 10},
	})
	if total != 100 {
		t.Fatalf("total = %v, want 100", total)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Key != "Rent" || groups[0].Total != 60 || groups[0].Count != 1 {
		t.Errorf("largest group first, got %+v", groups[0])
	}
	if groups[1].Key != "Food" || groups[1].Total != 40 || groups[1].Count != 2 {
		t.Errorf("food group = %+v", groups[1])
	}
	if math.Abs(groups[0].Percent-60) > 1e-9 || math.Abs(groups[1].Percent-40) > 1e-9 {
		t.Errorf("percents = %v, %v", groups[0].Percent, groups[1].Percent)
	}
}

func TestGroupTotalsZeroTotal(t *testing.T) {
	groups, total := GroupTotals([]Entry{
		{"A", 50},
		{"B", -50},
	})
	if total != 0 {
		t.Fatalf("total = %v, want 0", total)
	}
	for _, g := range groups {
		if g.Percent != 0 {
			t.Errorf("group %q percent = %v, want 0 when total is 0", g.Key, g.Percent)
		}
	}
}

func TestGroupTotalsEmpty(t *testing.T) {
	groups, total := GroupTotals(nil)
	if len(groups) != 0 || total != 0 {
		t.Errorf("groups = %+v, total = %v", groups, total)
	}
}

func TestGroupTotalsTieOrder(t *testing.T) {
	groups, _ := GroupTotals([]Entry{
		{"b", 10},
		{"a", 10},
	})
	if groups[0].Key != "a" || groups[1].Key != "b" {
		t.Errorf("equal totals should order by key: %+v", groups)
	}
}
