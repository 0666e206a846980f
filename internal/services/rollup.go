package services

import (
	"sort"

	"foldersize/internal/domain"
)

// Rollup folds the run of smallest sized non-directory entries, up to the
// first folder in ascending size order, into one synthetic entry under parent.
// The result is sorted by size, largest first. Entries without a size (links
// and excluded entries) sort as zero and are never absorbed.
//
// Both sorts are stable, so equal sizes keep their listing order.
func Rollup(parent string, children []*domain.Entry) []*domain.Entry {
	ascending := append([]*domain.Entry{}, children...)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].SizeOrZero() < ascending[j].SizeOrZero()
	})

	kept := make([]*domain.Entry, 0, len(ascending))
	var absorbed []*domain.Entry
	rolling := true
	for _, entry := range ascending {
		if entry.IsDir() {
			rolling = false
		}
		if rolling && absorbable(entry) {
			absorbed = append(absorbed, entry)
			continue
		}
		kept = append(kept, entry)
	}

	if len(absorbed) > 0 {
		kept = append(kept, domain.NewRollup(parent, absorbed))
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SizeOrZero() > kept[j].SizeOrZero()
	})
	return kept
}

func absorbable(entry *domain.Entry) bool {
	if entry.IsDir() {
		return false
	}
	_, sized := entry.Size()
	return sized
}
