package entity

// MenuItem is one dish from the remote menu feed. ID is the item's
// zero-based position in the feed at normalization time; the whole table is
// replaced on every successful fetch, so ids never mix between batches.
type MenuItem struct {
	ID          int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (MenuItem) TableName() string {
	return "menuitems"
}
