package color

// distincts is ordered in light/dark pairs: the even indices are the 10
// strong colors, each followed by its pale companion. Taking every other
// entry therefore yields the maximally distinguishable set.
var distincts = [20]string{
	"#1f77b4", "#aec7e8",
	"#ff7f0e", "#ffbb78",
	"#2ca02c", "#98df8a",
	"#d62728", "#ff9896",
	"#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94",
	"#e377c2", "#f7b6d2",
	"#7f7f7f", "#c7c7c7",
	"#bcbd22", "#dbdb8d",
	"#17becf", "#9edae5",
}

// Distinct returns n visually distinct hex colors. Up to 10, it picks the
// strong colors at even table indices; up to 20, the table prefix; past
// 20 the caller gets all 20 entries, fewer than asked for. The returned
// slice is always a fresh copy.
func Distinct(n int) []string {
	switch {
	case n <= 10:
		out := make([]string, 0, max(n, 0))
		for i := 0; i < n; i++ {
			out = append(out, distincts[2*i])
		}
		return out
	case n <= 20:
		out := make([]string, n)
		copy(out, distincts[:n])
		return out
	default:
		out := make([]string, len(distincts))
		copy(out, distincts[:])
		return out
	}
}
