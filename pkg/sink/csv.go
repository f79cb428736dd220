// Package sink writes dimension rows as CSV to stdout or to a file. The
// destination is selected once at construction; the write path does not
// branch on it again.
package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
)

type CSV struct {
	log  *slog.Logger
	path string // empty means stdout
}

// New returns a sink writing to the given file path, or to stdout when
// path is empty.
func New(log *slog.Logger, path string) (*CSV, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}
	return &CSV{log: log, path: path}, nil
}

// Write emits the header row followed by every row the sequence yields.
// A nil rows sequence writes the header only.
//
// File destinations are written atomically: rows go to a temp file in
// the target directory which is renamed over the destination on
// success, so a failed run never leaves a partial file behind.
func (s *CSV) Write(header []string, rows iter.Seq[[]string]) error {
	if s.path == "" {
		return writeCSV(os.Stdout, header, rows)
	}
	return s.writeFile(header, rows)
}

func (s *CSV) writeFile(header []string, rows iter.Seq[[]string]) (err error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			if rmErr := os.Remove(tmp.Name()); rmErr != nil {
				s.log.Warn("failed to remove temp output file", "file", tmp.Name(), "error", rmErr)
			}
		}
	}()

	if err = writeCSV(tmp, header, rows); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to move output file to %s: %w", s.path, err)
	}
	s.log.Debug("csv written", "file", s.path)
	return nil
}

func writeCSV(w io.Writer, header []string, rows iter.Seq[[]string]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if rows != nil {
		for row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}
	return nil
}
