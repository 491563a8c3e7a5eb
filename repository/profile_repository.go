package repository

import (
	"errors"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository owns the profile table. Email is the natural key.
type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// Upsert inserts or replaces the row with the same email.
func (r *ProfileRepository) Upsert(p *entity.Profile) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		UpdateAll: true,
	}).Create(p).Error
}

// FindByEmail returns (nil, nil) when no row exists.
func (r *ProfileRepository) FindByEmail(email string) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.DB.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
