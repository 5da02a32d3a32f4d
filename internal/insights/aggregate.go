package insights

import "sort"

// Entry is one contribution to a grouped total.
type Entry struct {
	Key    string
	Amount float64
}

// Group is one aggregated bucket.
type Group struct {
	Key     string  `json:"key"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
	Count   int     `json:"count"`
}

// GroupTotals sums entries per key and computes each group's share of the
// overall total. A zero overall total yields 0% for every group. Groups are
// ordered by descending total.
func GroupTotals(entries []Entry) ([]Group, float64) {
	totals := make(map[string]*Group)
	var overall float64
	for _, e := range entries {
		g, ok := totals[e.Key]
		if !ok {
			g = &Group{Key: e.Key}
			totals[e.Key] = g
		}
		g.Total += e.Amount
		g.Count++
		overall += e.Amount
	}

	groups := make([]Group, 0, len(totals))
	for _, g := range totals {
		if overall != 0 {
			g.Percent = g.Total / overall * 100
		}
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Key < groups[j].Key
	})
	return groups, overall
}
