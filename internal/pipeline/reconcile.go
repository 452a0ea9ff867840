package pipeline

// StaleKeys computes the deletion side of a mark-and-sweep pass: persisted
// keys absent from the fetched set. Reserved metadata keys (the sorted
// index) are skipped so they are never swept. Pure function; running it
// twice over the same inputs yields the same set.
func StaleKeys(persisted []string, fetched map[string]struct{}, reserved ...string) []string {
	skip := make(map[string]struct{}, len(reserved))
	for _, key := range reserved {
		skip[key] = struct{}{}
	}

	var stale []string
	for _, key := range persisted {
		if _, ok := skip[key]; ok {
			continue
		}
		if _, ok := fetched[key]; ok {
			continue
		}
		stale = append(stale, key)
	}
	return stale
}
