package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the name of the optional project configuration file.
const FileName = "aoc.yaml"

// ErrNoConfigFile is returned when no aoc.yaml exists in the directory or any parent.
var ErrNoConfigFile = errors.New("aoc.yaml not found (in the directory or any parent up to the root)")

// FindFileFrom walks up from startDir until it finds aoc.yaml.
func FindFileFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfigFile
		}
		dir = parent
	}
}
