package domain

// CompletionMap records, per day id, whether a student marked the day as done.
// A missing key means the day has not been marked yet.
type CompletionMap map[string]bool

// Clone returns a copy safe to mutate independently. A nil map clones to an empty one.
func (m CompletionMap) Clone() CompletionMap {
	out := make(CompletionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CountCompleted counts days that are both in days and marked true.
// Entries for day ids outside days (e.g. removed days) are ignored.
func (m CompletionMap) CountCompleted(days []TrainingDay) int {
	seen := make(map[string]struct{}, len(days))
	completed := 0
	for _, d := range days {
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}
		if m[d.ID] {
			completed++
		}
	}
	return completed
}
