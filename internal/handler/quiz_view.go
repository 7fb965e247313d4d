package handler

import (
	"fmt"
	"strings"

	"vocabulaire/internal/domain"
)

// quizView renders a quiz on the console; it implements service.QuizUI
type quizView struct {
	console *Console
}

func (v *quizView) PresentTerm(term string, synonymCount int) {
	if synonymCount > 1 {
		v.console.Printf("What does \" %s \" mean (%d synonyms in total)?\n", term, synonymCount)
		return
	}
	v.console.Printf("What does \" %s \" mean?\n", term)
}

func (v *quizView) AskSynonym(index, count int) string {
	if count > 1 {
		v.console.Printf("Synonym #%d:\n", index+1)
	}
	// closed input scores as a wrong answer
	reply, _ := v.console.ReadLine()
	return strings.TrimSpace(reply)
}

func (v *quizView) ShowFeedback(fb domain.Feedback) {
	c := v.console
	switch fb.Verdict {
	case domain.VerdictCorrect:
		c.Say(domain.VerdictCorrect, "Correct!")
	case domain.VerdictNear:
		c.Printf("%s Watch the accents: \" %s \"\n", c.styles.Near.Render("Almost!"), fb.Expected)
	case domain.VerdictWrong:
		c.Printf("%s The correct answer is \" %s \".\n", c.styles.Wrong.Render("Wrong!"), fb.Expected)
	}
	c.Println()
}

func (v *quizView) ShowRound(result domain.RoundResult) {
	score := fmt.Sprintf("%d/%d", result.Corrects, result.Total)
	style := v.console.styles.Correct
	if result.Poor() {
		style = v.console.styles.Wrong
	}
	v.console.Printf("\n***  You wrote %s words correctly!  ***\n\n", style.Render(score))
}

func (v *quizView) ConfirmRetry() bool {
	retry, err := Ask(v.console, "Do you want to repeat the test for the wrong words? (y/n)", ParseYesNo)
	if err != nil {
		return false
	}
	v.console.Println()
	return retry
}
