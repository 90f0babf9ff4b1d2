package color

import (
	"sort"
	"strings"
)

// Theme is an ordered document color palette of 10 or 12 hex colors.
// The first ten positions carry semantic slot names; positions 10 and 11,
// present only on the larger palettes, are extra accents reachable by
// index alone.
type Theme []string

// themeSlots maps slot names to positions. The light/dark ordering is the
// published one: light_2 and dark_2 come before light_1 and dark_1.
var themeSlots = map[string]int{
	"accent_1": 0,
	"accent_2": 1,
	"accent_3": 2,
	"accent_4": 3,
	"accent_5": 4,
	"accent_6": 5,
	"light_2":  6,
	"dark_2":   7,
	"light_1":  8,
	"dark_1":   9,
}

// ByIndex returns the color at position i. The second result is false
// when i is out of range.
func (t Theme) ByIndex(i int) (string, bool) {
	if i < 0 || i >= len(t) {
		return "", false
	}
	return t[i], true
}

// BySlot returns the color for a semantic slot name such as "accent_1" or
// "dark_2". The second result is false for unknown slots and for slots
// beyond the palette's length.
func (t Theme) BySlot(slot string) (string, bool) {
	i, ok := themeSlots[slot]
	if !ok || i >= len(t) {
		return "", false
	}
	return t[i], true
}

// ByRange returns a copy of the colors in [lo, hi), clamping both bounds
// to the palette the way a slice expression would rather than failing.
func (t Theme) ByRange(lo, hi int) []string {
	if lo < 0 {
		lo = 0
	}
	if hi > len(t) {
		hi = len(t)
	}
	if lo >= hi {
		return []string{}
	}
	out := make([]string, hi-lo)
	copy(out, t[lo:hi])
	return out
}

// Colors returns a copy of the whole palette.
func (t Theme) Colors() []string {
	out := make([]string, len(t))
	copy(out, t)
	return out
}

// String joins the palette with spaces.
func (t Theme) String() string {
	return strings.Join(t, " ")
}

// SlotNames returns the semantic slot names in palette position order.
func SlotNames() []string {
	out := make([]string, len(themeSlots))
	for name, i := range themeSlots {
		out[i] = name
	}
	return out
}

// Themes is the document theme catalog.
var Themes = map[string]Theme{
	"Office":      {"#4f81bd", "#c0504d", "#9bbb59", "#8064a2", "#4bacc6", "#f79646", "#eeece1", "#1f497d", "#ffffff", "#000000"},
	"Adjacency":   {"#A9A57C", "#9CBEBD", "#D2CB6C", "#95A39D", "#C89F5D", "#B1A089", "#DFDCB7", "#675E47", "#FFFFFF", "#2F2B20", "#D25814", "#849A0A"},
	"Apex":        {"#ceb966", "#9cb084", "#6bb1c9", "#6585cf", "#7e6bc9", "#a379bb", "#c9c2d1", "#69676d", "#ffffff", "#000000"},
	"Apothecary":  {"#93A299", "#CF543F", "#B5AE53", "#848058", "#E8B54D", "#786C71", "#ECEDD1", "#564B3C", "#FFFFFF", "#000000", "#CCCC00", "#B2B2B2"},
	"Aspect":      {"#f07f09", "#9f2936", "#1b587c", "#4e8542", "#604878", "#c19859", "#e3ded1", "#323232", "#ffffff", "#000000"},
	"Austin":      {"#94C600", "#71685A", "#FF6700", "#909465", "#956B43", "#FEA022", "#CAF278", "#3E3D2D", "#FFFFFF", "#000000", "#E68200", "#FFA94A"},
	"BlackTie":    {"#6F6F74", "#A7B789", "#BEAE98", "#92A9B9", "#9C8265", "#8D6974", "#E3DCCF", "#46464A", "#FFFFFF", "#000000", "#67AABF", "#B1B5AB"},
	"Civic":       {"#d16349", "#ccb400", "#8cadae", "#8c7b70", "#8fb08c", "#d19049", "#c5d1d7", "#646b86", "#ffffff", "#000000"},
	"Clarity":     {"#93A299", "#AD8F67", "#726056", "#4C5A6A", "#808DA0", "#79463D", "#F3F2DC", "#D2533C", "#FFFFFF", "#292934", "#0000FF", "#800080"},
	"Composite":   {"#98C723", "#59B0B9", "#DEAE00", "#B77BB4", "#E0773C", "#A98D63", "#E7ECED", "#5B6973", "#FFFFFF", "#000000", "#26CBEC", "#598C8C"},
	"Concourse":   {"#2da2bf", "#da1f28", "#eb641b", "#39639d", "#474b78", "#7d3c4a", "#def5fa", "#464646", "#ffffff", "#000000"},
	"Couture":     {"#9E8E5C", "#A09781", "#85776D", "#AEAFA9", "#8D878B", "#6B6149", "#D0CCB9", "#37302A", "#FFFFFF", "#000000", "#B6A272", "#8A784F"},
	"Elemental":   {"#629DD1", "#297FD5", "#7F8FA9", "#4A66AC", "#5AA2AE", "#9D90A0", "#ACCBF9", "#242852", "#FFFFFF", "#000000", "#9454C3", "#3EBBF0"},
	"Equity":      {"#d34817", "#9b2d1f", "#a28e6a", "#956251", "#918485", "#855d5d", "#e9e5dc", "#696464", "#ffffff", "#000000"},
	"Essential":   {"#7A7A7A", "#F5C201", "#526DB0", "#989AAC", "#DC5924", "#B4B392", "#C8C8B1", "#D1282E", "#FFFFFF", "#000000", "#CC9900", "#969696"},
	"Executive":   {"#6076B4", "#9C5252", "#E68422", "#846648", "#63891F", "#758085", "#E4E9EF", "#2F5897", "#FFFFFF", "#000000", "#3399FF", "#B2B2B2"},
	"Flow":        {"#0f6fc6", "#009dd9", "#0bd0d9", "#10cf9b", "#7cca62", "#a5c249", "#dbf5f9", "#04617b", "#ffffff", "#000000"},
	"Foundry":     {"#72a376", "#b0ccb0", "#a8cdd7", "#c0beaf", "#cec597", "#e8b7b7", "#eaebde", "#676a55", "#ffffff", "#000000"},
	"Grid":        {"#C66951", "#BF974D", "#928B70", "#87706B", "#94734E", "#6F777D", "#CCD1B9", "#534949", "#FFFFFF", "#000000", "#CC9900", "#C0C0C0"},
	"Hardcover":   {"#873624", "#D6862D", "#D0BE40", "#877F6C", "#972109", "#AEB795", "#ECE9C6", "#895D1D", "#FFFFFF", "#000000", "#CC9900", "#B2B2B2"},
	"Horizon":     {"#7E97AD", "#CC8E60", "#7A6A60", "#B4936D", "#67787B", "#9D936F", "#DC9E1F", "#1F2123", "#FFFFFF", "#000000", "#646464", "#969696"},
	"Median":      {"#94b6d2", "#dd8047", "#a5ab81", "#d8b25c", "#7ba79d", "#968c8c", "#ebddc3", "#775f55", "#ffffff", "#000000"},
	"Metro":       {"#7fd13b", "#ea157a", "#feb80a", "#00addc", "#738ac8", "#1ab39f", "#d6ecff", "#4e5b6f", "#ffffff", "#000000"},
	"Module":      {"#f0ad00", "#60b5cc", "#e66c7d", "#6bb76d", "#e88651", "#c64847", "#d4d4d6", "#5a6378", "#ffffff", "#000000"},
	"Newsprint":   {"#AD0101", "#726056", "#AC956E", "#808DA9", "#424E5B", "#730E00", "#DEDEE0", "#303030", "#FFFFFF", "#000000", "#D26900", "#D89243"},
	"Opulent":     {"#b83d68", "#ac66bb", "#de6c36", "#f9b639", "#cf6da4", "#fa8d3d", "#f4e7ed", "#b13f9a", "#ffffff", "#000000"},
	"Oriel":       {"#fe8637", "#7598d9", "#b32c16", "#f5cd2d", "#aebad5", "#777c84", "#fff39d", "#575f6d", "#ffffff", "#000000"},
	"Origin":      {"#727ca3", "#9fb8cd", "#d2da7a", "#fada7a", "#b88472", "#8e736a", "#dde9ec", "#464653", "#ffffff", "#000000"},
	"Paper":       {"#a5b592", "#f3a447", "#e7bc29", "#d092a7", "#9c85c0", "#809ec2", "#fefac9", "#444d26", "#ffffff", "#000000"},
	"Perspective": {"#838D9B", "#D2610C", "#80716A", "#94147C", "#5D5AD2", "#6F6C7D", "#FF8600", "#283138", "#FFFFFF", "#000000", "#6187E3", "#7B8EB8"},
	"Pushpin":     {"#FDA023", "#AA2B1E", "#71685C", "#64A73B", "#EB5605", "#B9CA1A", "#CCDDEA", "#465E9C", "#FFFFFF", "#000000", "#D83E2C", "#ED7D27"},
	"SlipStream":  {"#4E67C8", "#5ECCF3", "#A7EA52", "#5DCEAF", "#FF8021", "#F14124", "#B4DCFA", "#212745", "#FFFFFF", "#000000", "#56C7AA", "#59A8D1"},
	"Solstice":    {"#4f271c", "#feb80a", "#e7bc29", "#84aa33", "#964305", "#475a8d", "#e7dec9", "#4f271c", "#ffffff", "#000000"},
	"Technic":     {"#6ea0b0", "#6ea0b0", "#8d89a4", "#748560", "#9e9273", "#7e848d", "#d4d2d0", "#3b3b3b", "#ffffff", "#000000"},
	"Thatch":      {"#759AA5", "#CFC60D", "#99987F", "#90AC97", "#FFAD1C", "#B9AB6F", "#DFE6D0", "#1D3641", "#FFFFFF", "#000000", "#66AACD", "#809DB3"},
	"Trek":        {"#f0a22e", "#a5644e", "#b58b80", "#c3986d", "#a19574", "#c17529", "#fbeec9", "#4e3b30", "#ffffff", "#000000"},
	"Urban":       {"#53548a", "#438086", "#a04da3", "#c4652d", "#8b5d3d", "#5c92b5", "#dedede", "#424456", "#ffffff", "#000000"},
	"Verve":       {"#ff388c", "#e40059", "#9c007f", "#68007f", "#005bd3", "#00349e", "#d2d2d2", "#666666", "#ffffff", "#000000"},
	"Waveform":    {"#31B6FD", "#4584D3", "#5BD078", "#A5D028", "#F5C040", "#05E0DB", "#C6E7FC", "#073E87", "#FFFFFF", "#000000", "#0080FF", "#5EAEFF"},
}

// ThemeNames returns the catalog names in sorted order.
func ThemeNames() []string {
	out := make([]string, 0, len(Themes))
	for name := range Themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
