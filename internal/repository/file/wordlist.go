package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// WordListRepo implements repository.WordListRepository over plain text files
type WordListRepo struct{}

// NewWordListRepo creates a new word list repository
func NewWordListRepo() *WordListRepo {
	return &WordListRepo{}
}

// Exists reports whether path names an existing regular file
func (r *WordListRepo) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadLines returns every line of the file in order.
// Line terminators (\n or \r\n) are removed; a UTF-8 byte order mark is dropped.
func (r *WordListRepo) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// WriteLines writes lines to path, one per line, replacing any existing file
func (r *WordListRepo) WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
