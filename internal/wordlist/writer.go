package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/pwtool/internal/model"
)

// Write writes one entry per line, each terminated by "\n".
func Write(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates or truncates path and writes the words to it.
// Parent directories are created as needed. The file is closed on every
// path; errors wrap model.ErrIO and keep the underlying cause.
func WriteFile(path string, words []string) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
			return fmt.Errorf("%w: failed to create directory %s: %w", model.ErrIO, dir, mkErr)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", model.ErrIO, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: failed to close %s: %w", model.ErrIO, path, closeErr))
		}
	}()

	if err := Write(f, words); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", model.ErrIO, path, err)
	}
	return nil
}
