package entity

// Section is a derived view: one category's matching items under its display
// label. Never persisted; recomputed whenever the query, the selected
// categories or the item set changes.
type Section struct {
	Name string     `json:"name"`
	Data []MenuItem `json:"data"`
}
