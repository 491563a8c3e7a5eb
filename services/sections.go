package services

import (
	"strings"

	"github.com/HuyNLy/Little-Lemon-App/entity"
)

// FilterItems keeps items whose name or description contains query
// (case-insensitive; empty query matches everything) and whose category is
// in the selected set (empty set = no restriction). Selected categories are
// display labels, e.g. "Starters". Input order is preserved.
func FilterItems(items []entity.MenuItem, query string, selected []string) []entity.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))

	active := make(map[string]bool, len(selected))
	for _, label := range selected {
		active[strings.ToLower(strings.TrimSpace(label))] = true
	}

	out := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		if len(active) > 0 && !active[strings.ToLower(item.Category)] {
			continue
		}
		out = append(out, item)
	}
	return out
}

// BuildSections filters, then partitions the survivors into the four fixed
// categories in display order. A category with no matches is omitted
// entirely; items outside the known set never appear. Pure and deterministic.
func BuildSections(items []entity.MenuItem, query string, selected []string) []entity.Section {
	filtered := FilterItems(items, query, selected)

	sections := make([]entity.Section, 0, len(entity.CategoryOrder))
	for _, category := range entity.CategoryOrder {
		var data []entity.MenuItem
		for _, item := range filtered {
			if item.Category == category {
				data = append(data, item)
			}
		}
		if len(data) == 0 {
			continue
		}
		sections = append(sections, entity.Section{
			Name: entity.DisplayCategory(category),
			Data: data,
		})
	}
	return sections
}
