package service

import (
	"math/rand/v2"

	"vocabulaire/internal/domain"
	"vocabulaire/internal/repository"

	"go.uber.org/zap"
)

// QuizUI is the interactive side of a quiz.
// The service decides what is asked and how replies score; the UI only
// renders and reads.
type QuizUI interface {
	PresentTerm(term string, synonymCount int)
	// AskSynonym returns the reply for slot index (0-based) of count
	AskSynonym(index, count int) string
	ShowFeedback(fb domain.Feedback)
	ShowRound(result domain.RoundResult)
	ConfirmRetry() bool
}

// QuizOutcome summarizes a finished quiz
type QuizOutcome struct {
	Session domain.Session
	// Saved is the original sample, untouched by later rounds
	Saved  *domain.QuizSet
	Rounds []domain.RoundResult
}

// QuizService runs vocabulary quizzes
type QuizService struct {
	history repository.HistoryRepository
	rng     *rand.Rand
	logger  *zap.Logger
	state   domain.QuizState
}

// NewQuizService creates a new quiz service.
// history may be nil, in which case rounds are not recorded.
// rng may be nil, in which case a randomly seeded source is used.
func NewQuizService(history repository.HistoryRepository, rng *rand.Rand, logger *zap.Logger) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuizService{
		history: history,
		rng:     rng,
		logger:  logger,
		state:   domain.StateSampling,
	}
}

// State returns the engine's current step
func (s *QuizService) State() domain.QuizState {
	return s.state
}

func (s *QuizService) setState(state domain.QuizState) {
	s.logger.Debug("Quiz state changed",
		zap.String("from", string(s.state)),
		zap.String("to", string(state)),
	)
	s.state = state
}

// Sample draws up to n lines uniformly without replacement and parses them
// into a QuizSet. n <= 0 or n beyond the list length takes every line.
// Lines without a term are skipped; duplicate terms collapse.
func (s *QuizService) Sample(lines []string, n int) *domain.QuizSet {
	shuffled := append([]string(nil), lines...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n <= 0 || n > len(shuffled) {
		n = len(shuffled)
	}

	set := domain.NewQuizSet()
	for _, line := range shuffled[:n] {
		if entry, ok := domain.ParseEntry(line); ok {
			set.Add(entry)
		}
	}
	return set
}

// Shuffle returns a copy of set with its entries in random order
func (s *QuizService) Shuffle(set *domain.QuizSet) *domain.QuizSet {
	entries := set.Entries()
	s.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	return domain.NewQuizSet(entries...)
}

// PlayRound asks every entry of set once.
// The first wrong synonym ends the entry and records it as a mistake.
func (s *QuizService) PlayRound(ui QuizUI, set *domain.QuizSet, round int) domain.RoundResult {
	result := domain.RoundResult{
		Round:    round,
		Total:    set.Len(),
		Mistakes: domain.NewQuizSet(),
	}

	for _, entry := range set.Entries() {
		s.setState(domain.StatePresenting)
		synonyms := entry.Synonyms()
		ui.PresentTerm(entry.Term, len(synonyms))

		allCorrect := true
		for i := range synonyms {
			reply := ui.AskSynonym(i, len(synonyms))

			s.setState(domain.StateScoring)
			verdict, matched := Classify(reply, synonyms)
			fb := domain.Feedback{Verdict: verdict, Term: entry.Term, Reply: reply, Expected: matched}
			if verdict == domain.VerdictWrong {
				fb.Expected = entry.Definition
				ui.ShowFeedback(fb)
				result.Mistakes.Add(entry)
				allCorrect = false
				break
			}
			ui.ShowFeedback(fb)
		}

		if allCorrect {
			result.Corrects++
		}
	}

	s.setState(domain.StateRoundComplete)
	return result
}

// Run samples n lines and quizzes them until every entry of a round is
// correct or the user declines to repeat the missed ones.
func (s *QuizService) Run(ui QuizUI, source string, lines []string, n int) (*QuizOutcome, error) {
	s.setState(domain.StateSampling)
	set := s.Sample(lines, n)
	if set.Len() == 0 {
		return nil, domain.ErrEmptyWordList
	}

	outcome := &QuizOutcome{
		Session: domain.NewSession(source),
		Saved:   set.Clone(),
	}

	for round := 1; ; round++ {
		result := s.PlayRound(ui, set, round)
		outcome.Rounds = append(outcome.Rounds, result)
		s.record(outcome.Session, result)
		ui.ShowRound(result)

		s.logger.Info("Round complete",
			zap.Int("round", round),
			zap.Int("corrects", result.Corrects),
			zap.Int("total", result.Total),
		)

		if result.Perfect() || !ui.ConfirmRetry() {
			break
		}

		s.setState(domain.StateRetry)
		set = s.Shuffle(result.Mistakes)
	}

	s.setState(domain.StateDone)
	return outcome, nil
}

// record stores a round in the history; failures never interrupt the quiz
func (s *QuizService) record(session domain.Session, result domain.RoundResult) {
	if s.history == nil {
		return
	}

	_, err := s.history.SaveRound(domain.RoundRecord{
		SessionID: session.ID,
		Source:    session.SourceFile,
		Round:     result.Round,
		Corrects:  result.Corrects,
		Total:     result.Total,
		Mistakes:  result.Mistakes.Terms(),
	})
	if err != nil {
		s.logger.Warn("Failed to record round", zap.Error(err), zap.Int("round", result.Round))
	}
}
