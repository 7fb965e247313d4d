package handler

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vocabulaire/internal/config"
	"vocabulaire/internal/repository/file"
	"vocabulaire/internal/service"
	"vocabulaire/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultQuizConfig = config.QuizConfig{MenuThreshold: 100, AskThreshold: 30, Extension: ".voc"}

func newTestHandler(input string, cfg config.QuizConfig) (*Handler, *bytes.Buffer) {
	out := &bytes.Buffer{}
	repo := file.NewWordListRepo()
	logger := testutil.NewTestLogger()

	h := NewHandler(
		NewConsole(strings.NewReader(input), out),
		service.NewLoaderService(repo, cfg.Extension, logger),
		service.NewSplitService(repo, cfg.Extension, logger),
		service.NewQuizService(nil, rand.New(rand.NewPCG(1, 2)), logger),
		service.NewReviewService(repo, cfg.Extension, logger),
		cfg,
		logger,
	)
	return h, out
}

func writeWordList(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestHandler_Run_PerfectQuiz(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "words.voc", "a, x", "b, x", "c, x")
	h, out := newTestHandler("x\nx\nX\n", defaultQuizConfig)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Spelling test of: words.voc")
	assert.Equal(t, 3, strings.Count(out.String(), "Correct!"))
	assert.Contains(t, out.String(), "3/3")
	assert.NotContains(t, out.String(), "repeat the test")
	assert.NotContains(t, out.String(), "save the words")
}

func TestHandler_Run_RetryMistakes(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "words.voc", "a, x", "b, x")
	h, out := newTestHandler("wrong\nx\nmaybe\ny\nx\n", defaultQuizConfig)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wrong!")
	assert.Contains(t, out.String(), `The correct answer is " x "`)
	assert.Contains(t, out.String(), "1/2")
	assert.Contains(t, out.String(), "answer y or n")
	assert.Contains(t, out.String(), "1/1")
}

func TestHandler_Run_DeclineRetry(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "words.voc", "a, x", "b, x")
	h, out := newTestHandler("no\nno\nn\n", defaultQuizConfig)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "0/2")
	assert.Equal(t, 1, strings.Count(out.String(), "repeat the test"))
}

func TestHandler_Run_NearAndSynonyms(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "words.voc", "chat, cat/féline")
	h, out := newTestHandler("cat\nfeline\n", defaultQuizConfig)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 synonyms in total")
	assert.Contains(t, out.String(), "Synonym #1:")
	assert.Contains(t, out.String(), "Synonym #2:")
	assert.Contains(t, out.String(), "Almost!")
	assert.Contains(t, out.String(), `Watch the accents: " féline "`)
	assert.Contains(t, out.String(), "1/1")
}

func TestHandler_Run_SavePartialSample(t *testing.T) {
	dir := t.TempDir()
	source := []string{"t1, x", "t2, x", "t3, x", "t4, x"}
	path := writeWordList(t, dir, "words.voc", source...)
	cfg := defaultQuizConfig
	cfg.AskThreshold = 2

	input := strings.Join([]string{
		"abc", "2", // sample size
		"x", "x", // answers
		"y",                               // save
		"  ",                              // empty name
		filepath.Join(dir, "review.txt"), // saved as review.voc
	}, "\n") + "\n"
	h, out := newTestHandler(input, cfg)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "How many words do you want to test (4 in total)?")
	assert.Contains(t, out.String(), "2/2")
	assert.Contains(t, out.String(), "The file was saved successfully")

	saved := readLines(t, filepath.Join(dir, "review.voc"))
	assert.Len(t, saved, 2)
	for _, line := range saved {
		assert.Contains(t, source, line)
	}
}

func TestHandler_Run_SaveDeclined(t *testing.T) {
	dir := t.TempDir()
	path := writeWordList(t, dir, "words.voc", "t1, x", "t2, x", "t3, x")
	cfg := defaultQuizConfig
	cfg.AskThreshold = 2

	h, out := newTestHandler("1\nx\nn\n", cfg)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "save the words")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHandler_Run_SaveFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeWordList(t, dir, "words.voc", "t1, x", "t2, x", "t3, x")
	cfg := defaultQuizConfig
	cfg.AskThreshold = 2

	badName := filepath.Join(dir, "missing", "review")
	h, out := newTestHandler("1\nx\ny\n"+badName+"\n", cfg)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "A problem occurred while saving the file")
	assert.NotContains(t, out.String(), "saved successfully")
}

func TestHandler_Run_Split(t *testing.T) {
	dir := t.TempDir()
	lines := []string{"a, 1", "b, 2", "c, 3", "d, 4", "e, 5"}
	path := writeWordList(t, dir, "words.voc", lines...)
	cfg := defaultQuizConfig
	cfg.MenuThreshold = 3

	h, out := newTestHandler("x\ns\n0\ntwo\n2\n", cfg)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "type T or S")
	assert.Contains(t, out.String(), "3 files were saved successfully")

	assert.Equal(t, lines[0:2], readLines(t, filepath.Join(dir, "words_part1.voc")))
	assert.Equal(t, lines[2:4], readLines(t, filepath.Join(dir, "words_part2.voc")))
	assert.Equal(t, lines[4:5], readLines(t, filepath.Join(dir, "words_part3.voc")))
}

func TestHandler_Run_MenuTest(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "words.voc", "a, x", "b, x", "c, x")
	cfg := defaultQuizConfig
	cfg.MenuThreshold = 3

	h, out := newTestHandler("T\nx\nx\nx\n", cfg)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Select an operation:")
	assert.Contains(t, out.String(), "3/3")
}

func TestHandler_Run_PromptsForPath(t *testing.T) {
	dir := t.TempDir()
	path := writeWordList(t, dir, "words.voc", "a, x")
	other := writeWordList(t, dir, "words.txt", "a, x")

	input := strings.Join([]string{"", filepath.Join(dir, "nothing.voc"), other, path, "x"}, "\n") + "\n"
	h, out := newTestHandler(input, defaultQuizConfig)

	err := h.Run("")

	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out.String(), "Enter the vocabulary file (.voc):"))
	assert.Contains(t, out.String(), "invalid file extension")
	assert.Contains(t, out.String(), "1/1")
}

func TestHandler_Run_BadArgumentFallsBackToPrompt(t *testing.T) {
	dir := t.TempDir()
	path := writeWordList(t, dir, "words.voc", "a, x")

	h, out := newTestHandler(path+"\nx\n", defaultQuizConfig)

	err := h.Run(filepath.Join(dir, "missing.voc"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "file does not exist")
	assert.Equal(t, 1, strings.Count(out.String(), "Enter the vocabulary file"))
	assert.Contains(t, out.String(), "1/1")
}

func TestHandler_Run_EmptyWordList(t *testing.T) {
	path := writeWordList(t, t.TempDir(), "empty.voc", "", "  ")
	h, out := newTestHandler("", defaultQuizConfig)

	err := h.Run(path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "no words to test")
}

func TestHandler_Run_InputClosed(t *testing.T) {
	t.Run("while asking for a file", func(t *testing.T) {
		h, _ := newTestHandler("", defaultQuizConfig)

		err := h.Run("")

		assert.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("during the quiz", func(t *testing.T) {
		path := writeWordList(t, t.TempDir(), "words.voc", "a, x", "b, x")
		h, out := newTestHandler("x\n", defaultQuizConfig)

		err := h.Run(path)

		assert.ErrorIs(t, err, ErrInputClosed)
		assert.Contains(t, out.String(), "1/2")
	})
}
