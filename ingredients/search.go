package ingredients

import (
	"strings"

	"provender/models"
)

// Search filters ingredients by name, case-insensitively: names starting
// with the query come first, followed by names that merely contain it,
// each group keeping the incoming (name) order. An empty query returns
// the input unchanged.
func Search(items []models.Ingredient, query string) []models.Ingredient {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	var starts, contains []models.Ingredient
	for _, item := range items {
		name := strings.ToLower(item.Name)
		switch {
		case strings.HasPrefix(name, q):
			starts = append(starts, item)
		case strings.Contains(name, q):
			contains = append(contains, item)
		}
	}
	return append(starts, contains...)
}
