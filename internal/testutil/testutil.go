package testutil

import (
	"fmt"

	"vocabulaire/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestLines creates n "termI, defI" word list lines
func NewTestLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("term%d, def%d", i+1, i+1)
	}
	return lines
}

// ScriptedQuizUI replays canned replies and records everything shown
type ScriptedQuizUI struct {
	// Replies returns the answer for a term's synonym slot
	Replies func(term string, index int) string
	Retries []bool

	Terms    []string
	Feedback []domain.Feedback
	Rounds   []domain.RoundResult
	Asked    int
	Prompts  int

	current string
}

func (u *ScriptedQuizUI) PresentTerm(term string, synonymCount int) {
	u.current = term
	u.Terms = append(u.Terms, term)
}

func (u *ScriptedQuizUI) AskSynonym(index, count int) string {
	u.Asked++
	if u.Replies == nil {
		return ""
	}
	return u.Replies(u.current, index)
}

func (u *ScriptedQuizUI) ShowFeedback(fb domain.Feedback) {
	u.Feedback = append(u.Feedback, fb)
}

func (u *ScriptedQuizUI) ShowRound(result domain.RoundResult) {
	u.Rounds = append(u.Rounds, result)
}

func (u *ScriptedQuizUI) ConfirmRetry() bool {
	u.Prompts++
	if len(u.Retries) == 0 {
		return false
	}
	retry := u.Retries[0]
	u.Retries = u.Retries[1:]
	return retry
}

// AnswerKey replies with the synonyms of each entry, as a perfect learner would
func AnswerKey(set *domain.QuizSet) func(term string, index int) string {
	return func(term string, index int) string {
		def, _ := set.Definition(term)
		synonyms := domain.VocabEntry{Term: term, Definition: def}.Synonyms()
		if index < len(synonyms) {
			return synonyms[index]
		}
		return ""
	}
}
