package domain

import "strings"

// SynonymSeparator splits alternative answers inside a definition
const SynonymSeparator = "/"

// VocabEntry represents a term-definition pair
type VocabEntry struct {
	Term       string
	Definition string
}

// ParseEntry parses a raw "term, definition" line.
// The term is the text before the first comma and the definition the text
// after the last one. A line without a comma yields the same text for both.
// ok is false when the term is empty.
func ParseEntry(line string) (entry VocabEntry, ok bool) {
	fields := strings.Split(line, ",")
	entry = VocabEntry{
		Term:       strings.TrimSpace(fields[0]),
		Definition: strings.TrimSpace(fields[len(fields)-1]),
	}
	return entry, entry.Term != ""
}

// Synonyms returns the trimmed answer alternatives of the definition
func (e VocabEntry) Synonyms() []string {
	parts := strings.Split(e.Definition, SynonymSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Line formats the entry back into a word list line
func (e VocabEntry) Line() string {
	return e.Term + ", " + e.Definition
}
