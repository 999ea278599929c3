// Package config provides loading and validation of aocrun process configuration.
package config

// Config is the process-wide configuration. It is built once at start-up and
// passed to every collaborator that needs it.
type Config struct {
	// Root is the directory holding the day-NN workspaces.
	Root string
	// Session is the session cookie sent with input requests.
	Session string
	// Year is the puzzle year used when fetching input.
	Year int
	// MaxYear is the latest year the year validator accepts.
	MaxYear int
	// BaseURL is the origin of the puzzle input endpoint.
	BaseURL string
	// Debug enables debug logging.
	Debug bool
	// File is the path of the aoc.yaml that was loaded, if any.
	File string
}

// fileConfig mirrors aoc.yaml.
type fileConfig struct {
	Root        string `yaml:"root"`
	Year        int    `yaml:"year"`
	MaxYear     int    `yaml:"max_year"`
	BaseURL     string `yaml:"base_url"`
	SessionFile string `yaml:"session_file"`
	Debug       *bool  `yaml:"debug"`
}
