package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"vocabulaire/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned when standard input ends while a prompt waits
var ErrInputClosed = errors.New("input closed")

// Styles holds the colors used for each kind of message
type Styles struct {
	Correct lipgloss.Style
	Near    lipgloss.Style
	Wrong   lipgloss.Style
	Info    lipgloss.Style
	Title   lipgloss.Style
	Hint    lipgloss.Style
}

// NewStyles builds styles bound to renderer, so color support follows the output
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Correct: r.NewStyle().Foreground(lipgloss.Color("10")),
		Near:    r.NewStyle().Foreground(lipgloss.Color("11")),
		Wrong:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Title:   r.NewStyle().Bold(true),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// For returns the style of a verdict
func (s Styles) For(v domain.Verdict) lipgloss.Style {
	switch v {
	case domain.VerdictCorrect:
		return s.Correct
	case domain.VerdictNear:
		return s.Near
	case domain.VerdictWrong:
		return s.Wrong
	default:
		return s.Info
	}
}

// Console reads answers line by line and prints styled messages
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	closed bool
}

// NewConsole creates a console over the given streams
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Closed reports whether input has ended
func (c *Console) Closed() bool {
	return c.closed
}

// ReadLine returns the next input line without its terminator
func (c *Console) ReadLine() (string, error) {
	if c.closed {
		return "", ErrInputClosed
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		c.closed = true
		return "", ErrInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println prints plain text
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf prints formatted plain text
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Say prints a message in the style of a verdict
func (c *Console) Say(v domain.Verdict, msg string) {
	fmt.Fprintln(c.out, c.styles.For(v).Render(msg))
}

// Title prints a bold heading
func (c *Console) Title(msg string) {
	fmt.Fprintln(c.out, c.styles.Title.Render(msg))
}

// Hint prints a dimmed remark
func (c *Console) Hint(msg string) {
	fmt.Fprintln(c.out, c.styles.Hint.Render(msg))
}
