package mcp

import "sort"

// Merge combines converted source entries with existing destination entries.
//
// The result is the union of both stores where existing entries win on key
// collision: a resync only ever introduces names absent from the
// destination, never overwrites what the user already has. Neither input is
// mutated. Merging the same incoming store into Merge's own prior output is
// a no-op.
func Merge(existing, incoming Store) Store {
	merged := make(Store, len(existing)+len(incoming))
	for name, raw := range incoming {
		merged[name] = raw
	}
	for name, raw := range existing {
		merged[name] = raw
	}
	return merged
}

// AddedKeys returns the sorted server names present in incoming but absent
// from existing: the names a Merge of this pair would introduce. It is a
// pure report and must be computed on the un-merged pair.
func AddedKeys(incoming, existing Store) []string {
	var added []string
	for name := range incoming {
		if _, present := existing[name]; !present {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	return added
}
