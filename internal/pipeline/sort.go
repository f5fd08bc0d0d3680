package pipeline

import (
	"slices"
	"strings"

	"hvrdb/internal/models"
)

// SortByCategory orders stores by category key in place. The sort is stable and stores
// without a category rank first, keeping their relative order. Treating a missing
// category as equal to every other key would not be a strict weak ordering, so the
// empty key sorts as the smallest value instead.
func SortByCategory(stores []models.Store) {
	slices.SortStableFunc(stores, func(a, b models.Store) int {
		return strings.Compare(a.CategoryKey(), b.CategoryKey())
	})
}
