package repository

import (
	"strings"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"gorm.io/gorm"
)

// MenuRepository owns the menuitems cache table.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) All() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}

// BulkReplace swaps the whole cache for a new batch inside one transaction;
// a failure leaves the prior rows untouched.
func (r *MenuRepository) BulkReplace(items []entity.MenuItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Query is the store-level mirror of the in-memory filter: case-insensitive
// substring on name or description, optional category restriction. Used as
// the offline-search fallback before the first successful fetch. The
// category restriction runs in SQL; the text fold runs in Go, because
// sqlite's LOWER and NOCASE fold ASCII only and the result must agree with
// the in-memory path for non-ASCII names.
func (r *MenuRepository) Query(text string, categories []string) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Order("id")
	if len(categories) > 0 {
		q = q.Where("category IN ?", categories)
	}

	var rows []entity.MenuItem
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return rows, nil
	}
	items := make([]entity.MenuItem, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.Description), needle) {
			items = append(items, row)
		}
	}
	return items, nil
}
