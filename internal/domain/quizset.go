package domain

// QuizSet is an ordered term -> definition mapping.
// Adding a term that already exists keeps its original position and replaces
// its definition (last insert wins).
type QuizSet struct {
	order []string
	defs  map[string]string
}

// NewQuizSet builds a set from entries in order
func NewQuizSet(entries ...VocabEntry) *QuizSet {
	s := &QuizSet{defs: make(map[string]string, len(entries))}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add inserts or overwrites an entry
func (s *QuizSet) Add(e VocabEntry) {
	if s.defs == nil {
		s.defs = make(map[string]string)
	}
	if _, exists := s.defs[e.Term]; !exists {
		s.order = append(s.order, e.Term)
	}
	s.defs[e.Term] = e.Definition
}

// Len returns the number of unique terms
func (s *QuizSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Contains reports whether term is in the set
func (s *QuizSet) Contains(term string) bool {
	_, ok := s.defs[term]
	return ok
}

// Definition returns the definition stored for term
func (s *QuizSet) Definition(term string) (string, bool) {
	d, ok := s.defs[term]
	return d, ok
}

// Entries returns the entries in insertion order
func (s *QuizSet) Entries() []VocabEntry {
	if s == nil {
		return nil
	}
	entries := make([]VocabEntry, 0, len(s.order))
	for _, term := range s.order {
		entries = append(entries, VocabEntry{Term: term, Definition: s.defs[term]})
	}
	return entries
}

// Terms returns the terms in insertion order
func (s *QuizSet) Terms() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Clone returns an independent copy
func (s *QuizSet) Clone() *QuizSet {
	return NewQuizSet(s.Entries()...)
}

// Lines formats every entry as a word list line
func (s *QuizSet) Lines() []string {
	entries := s.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	return lines
}
