package handler

import (
	"errors"
	"fmt"
	"path/filepath"

	"vocabulaire/internal/config"
	"vocabulaire/internal/domain"
	"vocabulaire/internal/service"

	"go.uber.org/zap"
)

// Handler drives the interactive session: load a word list, then split it
// or quiz on it, then offer to save the quizzed words
type Handler struct {
	console  *Console
	loader   *service.LoaderService
	splitter *service.SplitService
	quiz     *service.QuizService
	review   *service.ReviewService
	cfg      config.QuizConfig
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	console *Console,
	loader *service.LoaderService,
	splitter *service.SplitService,
	quiz *service.QuizService,
	review *service.ReviewService,
	cfg config.QuizConfig,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		console:  console,
		loader:   loader,
		splitter: splitter,
		quiz:     quiz,
		review:   review,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run executes one session. arg is the optional path given on the command line.
func (h *Handler) Run(arg string) error {
	h.console.Title("***  Welcome to Vocabulaire!  ***")
	h.console.Println()

	path, err := h.resolveFile(arg)
	if err != nil {
		return err
	}

	lines, err := h.loader.Load(path)
	if err != nil {
		return err
	}

	op := OperationTest
	if len(lines) >= h.cfg.MenuThreshold {
		op, err = Ask(h.console,
			"Select an operation:\n\tT: Test your spelling\n\tS: Split this file into smaller tests",
			ParseOperation,
		)
		if err != nil {
			return err
		}
	}

	if op == OperationSplit {
		return h.split(path, lines)
	}
	return h.test(path, lines)
}

// resolveFile accepts arg when it names a word list, otherwise asks until one is given
func (h *Handler) resolveFile(arg string) (string, error) {
	if arg != "" {
		path, err := h.loader.ResolvePath(arg)
		if err == nil {
			return path, nil
		}
		h.logger.Debug("Rejected command line path", zap.String("arg", arg), zap.Error(err))
		h.console.Hint(err.Error())
	}

	question := fmt.Sprintf("Enter the vocabulary file (%s):", h.loader.Extension())
	return Ask(h.console, question, h.loader.ResolvePath)
}

func (h *Handler) split(path string, lines []string) error {
	size, err := Ask(h.console, "Enter the number of words for each part:", ParseChunkSize)
	if err != nil {
		return err
	}

	written, err := h.splitter.Split(path, lines, size)
	if err != nil {
		return err
	}

	h.console.Say(domain.VerdictInfo, fmt.Sprintf("%d files were saved successfully", len(written)))
	return nil
}

func (h *Handler) test(path string, lines []string) error {
	h.console.Printf("Spelling test of: %s\n", filepath.Base(path))

	n := 0
	if len(lines) > h.cfg.AskThreshold {
		var err error
		question := fmt.Sprintf("How many words do you want to test (%d in total)?", len(lines))
		n, err = Ask(h.console, question, ParseSampleSize)
		if err != nil {
			return err
		}
	}

	outcome, err := h.quiz.Run(&quizView{console: h.console}, path, lines, n)
	if errors.Is(err, domain.ErrEmptyWordList) {
		h.console.Say(domain.VerdictWrong, "This file has no words to test")
		return nil
	}
	if err != nil {
		return err
	}
	if h.console.Closed() {
		return ErrInputClosed
	}

	return h.offerSave(outcome.Saved, len(lines))
}

// offerSave writes the original sample to a new word list on request.
// A failed write is reported and never ends the program with an error.
func (h *Handler) offerSave(saved *domain.QuizSet, totalLines int) error {
	if !h.review.ShouldOffer(saved, totalLines) {
		return nil
	}

	save, err := Ask(h.console, "Do you want to save the words of this test for review? (y/n)", ParseYesNo)
	if err != nil || !save {
		return err
	}

	name, err := Ask(h.console, "Enter the file name:", func(s string) (string, error) {
		if _, err := h.review.FileName(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return err
	}

	path, err := h.review.Save(name, saved)
	if err != nil {
		h.console.Say(domain.VerdictWrong, "A problem occurred while saving the file")
		return nil
	}

	h.console.Say(domain.VerdictInfo, fmt.Sprintf("The file was saved successfully: %s", path))
	return nil
}
