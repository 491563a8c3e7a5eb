package entity

// Profile is the single active user's record. Email is the identity key:
// at most one durable row per email, upsert semantics on save.
type Profile struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Phone           string `json:"phone"`
	Image           string `json:"image"`
	ExclusiveOffers bool   `json:"exclusiveOffers"`
	UpdatesNews     bool   `json:"updatesNews"`
}

func (Profile) TableName() string {
	return "profile"
}
