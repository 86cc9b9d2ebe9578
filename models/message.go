package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Message is the symbol sequence a speaker emits for one round.
// Symbols are indices into the experiment's alphabet, so every symbol lies in
// [0, AlphabetSize).
type Message struct {
	Symbols []int `json:"symbols"`
}

// String renders the message in its compact wire form: symbols joined by '#',
// e.g. "3#0#7". The same form is stored in run records, so it doubles as the
// canonical serialization.
func (m Message) String() string {
	parts := make([]string, len(m.Symbols))
	for i, s := range m.Symbols {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, "#")
}

// Equal reports whether two messages carry the same symbol sequence.
func (m Message) Equal(other Message) bool {
	if len(m.Symbols) != len(other.Symbols) {
		return false
	}
	for i := range m.Symbols {
		if m.Symbols[i] != other.Symbols[i] {
			return false
		}
	}
	return true
}

// ParseMessage is the inverse of [Message.String].
func ParseMessage(s string) (Message, error) {
	if s == "" {
		return Message{Symbols: []int{}}, nil
	}

	parts := strings.Split(s, "#")
	symbols := make([]int, len(parts))
	for i, p := range parts {
		symbol, err := strconv.Atoi(p)
		if err != nil {
			return Message{}, fmt.Errorf("error parsing message symbol %q: %w", p, err)
		}
		symbols[i] = symbol
	}

	return Message{Symbols: symbols}, nil
}
