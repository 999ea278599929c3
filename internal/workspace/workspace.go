// Package workspace locates and creates the per-day directories that hold
// puzzle input and solution source.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/AndreyAkinshin/aocrun/internal/naming"
	"github.com/AndreyAkinshin/aocrun/pkg/aoc"
)

// File names inside a day directory.
const (
	InputFileName    = aoc.DefaultInputName + ".txt"
	SolutionFileName = "index.go"
)

// Workspace resolves day directories below a solutions root.
type Workspace struct {
	Root string
}

// New returns a Workspace rooted at root.
func New(root string) *Workspace {
	return &Workspace{Root: root}
}

// Dir returns <Root>/day-NN.
func (w *Workspace) Dir(day int) string {
	return filepath.Join(w.Root, naming.FormatDayName(day))
}

// InputPath returns the path of the day's input artifact.
func (w *Workspace) InputPath(day int) string {
	return filepath.Join(w.Dir(day), InputFileName)
}

// SolutionPath returns the path of the day's solution source.
func (w *Workspace) SolutionPath(day int) string {
	return filepath.Join(w.Dir(day), SolutionFileName)
}

// Exists reports whether anything exists at the day's directory path.
func (w *Workspace) Exists(day int) bool {
	_, err := os.Stat(w.Dir(day))
	return err == nil
}

// SolutionExists reports whether the day's solution source is a regular file.
func (w *Workspace) SolutionExists(day int) bool {
	fi, err := os.Stat(w.SolutionPath(day))
	return err == nil && fi.Mode().IsRegular()
}

// Reader returns an input reader bound to the workspace root.
func (w *Workspace) Reader() aoc.Reader {
	return aoc.Reader{Root: w.Root}
}

// Create makes the day directory and writes the input and solution
// artifacts concurrently. The directory itself is created non-recursively,
// so a directory that appeared since Exists was checked is an error.
// Nothing is rolled back on failure.
func (w *Workspace) Create(ctx context.Context, day int, input, solution string) error {
	if err := os.MkdirAll(w.Root, 0755); err != nil {
		return fmt.Errorf("create solutions root: %w", err)
	}

	dir := w.Dir(day)
	if err := os.Mkdir(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("day directory %s already exists: %w", dir, err)
		}
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeFile(ctx, w.InputPath(day), input)
	})
	g.Go(func() error {
		return writeFile(ctx, w.SolutionPath(day), solution)
	})
	return g.Wait()
}

// writeFile writes content to path unless ctx is already done.
func writeFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
