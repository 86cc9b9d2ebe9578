package introspect

import (
	"sort"

	"github.com/MKhiriev/refgame/models"
)

// LexiconEntry is one distinct message observed during evaluation together
// with how often the speaker produced it.
type LexiconEntry struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// BuildLexicon tallies the distinct messages in a run, most frequent first.
// Ties are broken by message text so the order is stable across runs.
func BuildLexicon(messages []models.Message) []LexiconEntry {
	counts := make(map[string]int, len(messages))
	for _, m := range messages {
		counts[m.String()]++
	}

	entries := make([]LexiconEntry, 0, len(counts))
	for msg, count := range counts {
		entries = append(entries, LexiconEntry{Message: msg, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Message < entries[j].Message
	})
	return entries
}
