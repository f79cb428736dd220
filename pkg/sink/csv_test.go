package sink

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dimtesting "github.com/datakiln/dimgen/pkg/testing"
)

func rowSeq(rows [][]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range rows {
			if !yield(row) {
				return
			}
		}
	}
}

func TestDimgen_Sink_CSV(t *testing.T) {
	t.Parallel()
	log := dimtesting.NewLogger()

	t.Run("writes header and rows to file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dim.csv")
		s, err := New(log, path)
		require.NoError(t, err)

		err = s.Write([]string{"a", "b"}, rowSeq([][]string{
			{"1", "x"},
			{"2", "y"},
		}))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "a,b\n1,x\n2,y\n", string(data))
	})

	t.Run("header only mode writes exactly one line", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dim.csv")
		s, err := New(log, path)
		require.NoError(t, err)

		require.NoError(t, s.Write([]string{"a", "b", "c"}, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "a,b,c\n", string(data))
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dim.csv")
		require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

		s, err := New(log, path)
		require.NoError(t, err)
		require.NoError(t, s.Write([]string{"a"}, rowSeq([][]string{{"1"}})))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "a\n1\n", string(data))
	})

	t.Run("fails on unwritable destination and leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "does", "not", "exist")
		path := filepath.Join(dir, "dim.csv")
		s, err := New(log, path)
		require.NoError(t, err)

		err = s.Write([]string{"a"}, rowSeq([][]string{{"1"}}))
		require.Error(t, err)

		_, statErr := os.Stat(path)
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("leaves no temp files after a successful write", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "dim.csv")
		s, err := New(log, path)
		require.NoError(t, err)
		require.NoError(t, s.Write([]string{"a"}, rowSeq([][]string{{"1"}})))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "dim.csv", entries[0].Name())
	})

	t.Run("regeneration is byte identical", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		rows := [][]string{{"1", "Monday"}, {"2", "Tuesday"}}
		header := []string{"key", "day"}

		write := func(name string) string {
			path := filepath.Join(dir, name)
			s, err := New(log, path)
			require.NoError(t, err)
			require.NoError(t, s.Write(header, rowSeq(rows)))
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			return string(data)
		}
		first := write("one.csv")
		second := write("two.csv")
		require.Equal(t, first, second)
		require.Equal(t, 3, strings.Count(first, "\n"))
	})

	t.Run("rejects nil logger", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil, "out.csv")
		require.Error(t, err)
	})
}
