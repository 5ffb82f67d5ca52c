package atlas

// Merge appends every incoming estuary whose ID is not already present in
// existing. Existing order is preserved and new entries are appended in
// incoming order. Duplicate IDs are dropped silently; the inputs are never
// mutated.
func Merge(existing, incoming []Estuary) []Estuary {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.ID] = true
	}
	out := make([]Estuary, len(existing), len(existing)+len(incoming))
	copy(out, existing)
	for _, e := range incoming {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
