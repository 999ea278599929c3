package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkspace_Paths(t *testing.T) {
	w := New("src")

	if got, want := w.Dir(7), filepath.Join("src", "day-07"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got, want := w.InputPath(7), filepath.Join("src", "day-07", "input.txt"); got != want {
		t.Errorf("InputPath() = %q, want %q", got, want)
	}
	if got, want := w.SolutionPath(12), filepath.Join("src", "day-12", "index.go"); got != want {
		t.Errorf("SolutionPath() = %q, want %q", got, want)
	}
	if got := w.Reader().Root; got != "src" {
		t.Errorf("Reader().Root = %q, want %q", got, "src")
	}
}

func TestWorkspace_Create(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	w := New(root)

	if w.Exists(3) {
		t.Fatal("Exists() = true before Create")
	}

	if err := w.Create(context.Background(), 3, "puzzle input", "package main\n"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !w.Exists(3) {
		t.Error("Exists() = false after Create")
	}
	if !w.SolutionExists(3) {
		t.Error("SolutionExists() = false after Create")
	}

	input, err := os.ReadFile(w.InputPath(3))
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(input) != "puzzle input" {
		t.Errorf("input = %q, want %q", input, "puzzle input")
	}

	solution, err := os.ReadFile(w.SolutionPath(3))
	if err != nil {
		t.Fatalf("read solution: %v", err)
	}
	if string(solution) != "package main\n" {
		t.Errorf("solution = %q", solution)
	}
}

func TestWorkspace_CreateEmptyInput(t *testing.T) {
	w := New(t.TempDir())

	if err := w.Create(context.Background(), 1, "", "package main\n"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	fi, err := os.Stat(w.InputPath(1))
	if err != nil {
		t.Fatalf("stat input: %v", err)
	}
	if fi.Size() != 0 {
		t.Errorf("input size = %d, want 0", fi.Size())
	}
}

func TestWorkspace_CreateExistingDirFails(t *testing.T) {
	w := New(t.TempDir())
	if err := os.Mkdir(w.Dir(5), 0755); err != nil {
		t.Fatal(err)
	}

	if err := w.Create(context.Background(), 5, "x", "y"); err == nil {
		t.Fatal("Create() expected error for existing directory")
	}
	if _, err := os.Stat(w.SolutionPath(5)); !os.IsNotExist(err) {
		t.Error("Create() wrote into an existing directory")
	}
}

func TestWorkspace_CreateRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	if err := os.WriteFile(root, []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New(root).Create(context.Background(), 2, "", ""); err == nil {
		t.Fatal("Create() expected error when root is a file")
	}
}

func TestWorkspace_CreateCancelledLeavesDirectory(t *testing.T) {
	w := New(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Create(ctx, 9, "in", "src"); err == nil {
		t.Fatal("Create() expected error for cancelled context")
	}
	if !w.Exists(9) {
		t.Error("directory should be left behind after a failed write")
	}
	if w.SolutionExists(9) {
		t.Error("solution should not be written after cancellation")
	}
}

func TestWorkspace_SolutionExistsIgnoresDirectories(t *testing.T) {
	w := New(t.TempDir())
	if err := os.MkdirAll(w.SolutionPath(4), 0755); err != nil {
		t.Fatal(err)
	}
	if w.SolutionExists(4) {
		t.Error("SolutionExists() = true for a directory")
	}
}
