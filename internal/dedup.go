package internal

// Deduplicator removes duplicate conversations from an export batch.
type Deduplicator struct{}

// NewDeduplicator creates a new Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Deduplicate drops conversations whose id has already been seen,
// keeping the first occurrence. Relative order of the survivors is
// preserved.
func (d *Deduplicator) Deduplicate(conversations []Conversation) []Conversation {
	seen := make(map[string]bool, len(conversations))
	unique := make([]Conversation, 0, len(conversations))

	for _, conv := range conversations {
		if seen[conv.ID] {
			LogDebug("dropping duplicate conversation %s", conv.ID)
			continue
		}
		seen[conv.ID] = true
		unique = append(unique, conv)
	}

	return unique
}
