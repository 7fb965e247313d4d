package domain

// Verdict is the outcome of scoring one reply, consumed by the presentation layer
type Verdict int

const (
	VerdictInfo Verdict = iota
	VerdictCorrect
	VerdictNear
	VerdictWrong
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictNear:
		return "near"
	case VerdictWrong:
		return "wrong"
	default:
		return "info"
	}
}

// QuizState represents the quiz engine's current step
type QuizState string

const (
	StateSampling      QuizState = "sampling"
	StatePresenting    QuizState = "presenting"
	StateScoring       QuizState = "scoring"
	StateRoundComplete QuizState = "round_complete"
	StateRetry         QuizState = "retry"
	StateDone          QuizState = "done"
)

// Feedback describes a scored reply
type Feedback struct {
	Verdict Verdict
	Term    string
	Reply   string
	// Expected is the synonym matched for a near answer, or the whole
	// definition for a wrong one.
	Expected string
}

// RoundResult is the tally of one pass through a QuizSet
type RoundResult struct {
	Round    int
	Corrects int
	Total    int
	Mistakes *QuizSet
}

// Perfect reports whether every entry was answered correctly
func (r RoundResult) Perfect() bool {
	return r.Corrects == r.Total
}

// Poor reports whether fewer than half the entries were answered correctly
func (r RoundResult) Poor() bool {
	return r.Corrects < r.Total/2
}
