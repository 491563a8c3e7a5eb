package entity

// The menu knows exactly four categories. Anything else coming from the
// remote feed is stored but never shown in a sectioned view.
const (
	CategoryStarters = "starters"
	CategoryMains    = "mains"
	CategoryDesserts = "desserts"
	CategoryDrinks   = "drinks"
)

// CategoryOrder is the fixed display order of sections.
var CategoryOrder = []string{
	CategoryStarters,
	CategoryMains,
	CategoryDesserts,
	CategoryDrinks,
}

func IsKnownCategory(category string) bool {
	for _, c := range CategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

// DisplayCategory turns a raw category into its display label,
// e.g. "starters" -> "Starters".
func DisplayCategory(category string) string {
	if category == "" {
		return ""
	}
	r := []rune(category)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
