package reconcile

import (
	"cmp"
	"maps"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff computes which keys were added, deleted or updated between two
// collections. Records present on both sides are compared structurally over
// all their fields. A key repeated within either collection fails with a
// *DuplicateIdentifierError.
func Diff[K cmp.Ordered, T Record[K]](before, after []T) (IDSets[K], error) {
	var sets IDSets[K]

	beforeIndex, err := buildIndex[K](before, "before")
	if err != nil {
		return sets, err
	}
	afterIndex, err := buildIndex[K](after, "after")
	if err != nil {
		return sets, err
	}

	for _, key := range buildUnion(beforeIndex, afterIndex) {
		b, inBefore := beforeIndex[key]
		a, inAfter := afterIndex[key]

		switch {
		case inAfter && !inBefore:
			sets.Added = append(sets.Added, key)
		case inBefore && !inAfter:
			sets.Deleted = append(sets.Deleted, key)
		case !Equal(b, a):
			sets.Updated = append(sets.Updated, key)
		default:
			sets.Unchanged = append(sets.Unchanged, key)
		}
	}

	return sets, nil
}

// Equal reports whether two records are structurally equal. Values with an
// Equal method (time.Time, decimal.Decimal) compare through it, and nil and
// empty collections are treated alike.
func Equal[T any](a, b T) bool {
	return gocmp.Equal(a, b, cmpopts.EquateEmpty())
}

// buildIndex indexes records by key, rejecting repeated keys.
func buildIndex[K cmp.Ordered, T Record[K]](records []T, side string) (map[K]T, error) {
	index := make(map[K]T, len(records))
	for _, r := range records {
		key := r.Key()
		if _, exists := index[key]; exists {
			return nil, &DuplicateIdentifierError{Side: side, Key: key}
		}
		index[key] = r
	}
	return index, nil
}

// buildUnion returns the sorted union of keys from both indices.
func buildUnion[K cmp.Ordered, T any](before, after map[K]T) []K {
	union := make(map[K]struct{}, len(before)+len(after))
	for key := range before {
		union[key] = struct{}{}
	}
	for key := range after {
		union[key] = struct{}{}
	}
	return slices.Sorted(maps.Keys(union))
}
