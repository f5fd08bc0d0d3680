package pipeline

import (
	"hvrdb/internal/models"
)

// Split partitions category-sorted stores into two batches. Whole category runs are
// added to first while they fit within capacity; the first run that does not fit, and
// everything after it, goes to second. A category never spans both batches, so an
// oversized leading run is kept whole in first even though it exceeds capacity.
// Second is unbounded.
func Split(stores []models.Store, capacity int) (first, second []models.Store) {
	end := 0
	for start := 0; start < len(stores); {
		key := stores[start].CategoryKey()
		runEnd := start + 1
		for runEnd < len(stores) && stores[runEnd].CategoryKey() == key {
			runEnd++
		}

		if runEnd > capacity {
			if start == 0 {
				end = runEnd
			}
			break
		}

		end = runEnd
		start = runEnd
	}

	return stores[:end:end], stores[end:]
}
