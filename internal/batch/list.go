package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nao1215/pwtool/internal/model"
)

// maxLineSize bounds a single password line.
const maxLineSize = 64 * 1024

// Entry is one password read from a list, with its 1-based line number.
type Entry struct {
	Line     int
	Password string
}

// Label identifies the entry without revealing the password.
func (e Entry) Label() string {
	return fmt.Sprintf("line %d", e.Line)
}

// ReadList reads one password per line. Blank lines are skipped but still
// counted, so labels match the line numbers in the source file.
// A trailing carriage return is removed; other whitespace is kept because it
// is part of the password.
func ReadList(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var entries []Entry
	line := 0
	for scanner.Scan() {
		line++
		pw := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(pw) == "" {
			continue
		}
		entries = append(entries, Entry{Line: line, Password: pw})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read password list: %w", model.ErrIO, err)
	}
	return entries, nil
}

// ReadListFile reads a password list from path.
func ReadListFile(path string) (entries []Entry, err error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open password list: %w", model.ErrIO, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close password list: %w", model.ErrIO, closeErr)
		}
	}()

	return ReadList(f)
}
