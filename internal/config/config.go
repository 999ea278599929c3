package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	aocerrors "github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/schema"
)

// Options controls where Load looks for configuration.
type Options struct {
	// Dir is the directory to start the aoc.yaml search from and to resolve
	// relative environment paths against. Defaults to the working directory.
	Dir string
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Load builds the configuration from defaults, the nearest aoc.yaml and the
// process environment, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, aocerrors.Environment(fmt.Sprintf("cannot determine working directory: %v", err))
		}
		opts.Dir = wd
	}

	cfg := &Config{}
	baseDir := opts.Dir

	path, err := FindFileFrom(opts.Dir)
	switch {
	case err == nil:
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
		cfg.File = path
		baseDir = filepath.Dir(path)
	case errors.Is(err, ErrNoConfigFile):
	default:
		return nil, aocerrors.Configf("locate %s: %v", FileName, err)
	}

	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(baseDir, cfg.Root)
	}

	if err := applyEnv(cfg, opts); err != nil {
		return nil, err
	}

	applyDefaults(cfg, opts.Now().Year())
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(baseDir, cfg.Root)
	}

	return cfg, nil
}

// loadFile reads, validates and applies an aoc.yaml file.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return aocerrors.Configf("failed to read %s: %v", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return aocerrors.Configf("failed to parse %s: %v", path, err)
	}

	jsonData, err := schema.ToJSON(doc)
	if err != nil {
		return aocerrors.Configf("failed to convert %s: %v", path, err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return aocerrors.Configf("%s: %v", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return aocerrors.Configf("failed to parse %s: %v", path, err)
	}

	cfg.Root = fc.Root
	cfg.Year = fc.Year
	cfg.MaxYear = fc.MaxYear
	cfg.BaseURL = strings.TrimRight(fc.BaseURL, "/")
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	if fc.SessionFile != "" {
		sessionPath := fc.SessionFile
		if !filepath.IsAbs(sessionPath) {
			sessionPath = filepath.Join(filepath.Dir(path), sessionPath)
		}
		session, err := os.ReadFile(sessionPath)
		if err != nil {
			return aocerrors.Configf("failed to read session file: %v", err)
		}
		cfg.Session = strings.TrimSpace(string(session))
	}

	return nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config, opts Options) error {
	if v := opts.Getenv(EnvSession); v != "" {
		cfg.Session = strings.TrimSpace(v)
	}
	if v := opts.Getenv(EnvRoot); v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(opts.Dir, v)
		}
		cfg.Root = v
	}
	if v := opts.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	var err error
	if cfg.MaxYear, err = envInt(opts, EnvMaxYear, cfg.MaxYear); err != nil {
		return err
	}
	if cfg.Year, err = envInt(opts, EnvYear, cfg.Year); err != nil {
		return err
	}

	if v := opts.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return aocerrors.Configf("%s must be a boolean, got %q", EnvDebug, v)
		}
		cfg.Debug = debug
	}

	return nil
}

// envInt parses an integer environment variable, returning fallback when unset.
func envInt(opts Options, name string, fallback int) (int, error) {
	v := strings.TrimSpace(opts.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, aocerrors.Configf("%s must be an integer, got %q", name, v)
	}
	return n, nil
}
