// Package cli provides command-line interface functionality for aocrun.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 12
	helpFlagWidth    = 13
	helpEnvWidth     = 12
)

// env carries the process surroundings a command runs in.
type env struct {
	stdout io.Writer
	stderr io.Writer
	out    *output.Writer
	dir    string
	getenv func(string) string
	now    func() time.Time
}

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	e := &env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		out:    output.New(),
		getenv: os.Getenv,
		now:    time.Now,
	}
	return run(context.Background(), args, e)
}

func run(ctx context.Context, args []string, e *env) int {
	if len(args) == 0 {
		printUsage(e.out)
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(e.out)
		return 0
	case "--version", "version":
		fmt.Fprintf(e.stdout, "aocrun %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		e.out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	e.out.SetQuiet(opts.Quiet)

	if len(remaining) == 0 {
		printUsage(e.out)
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "setup":
		return cmdSetup(ctx, cmdArgs, opts, e)
	case "day", "run":
		return cmdDay(ctx, cmd, cmdArgs, opts, e)
	case "help":
		printUsage(e.out)
		return 0
	case "version":
		fmt.Fprintf(e.stdout, "aocrun %s\n", Version)
		return 0
	default:
		e.out.ErrorPrefix("unknown command %q", cmd)
		e.out.Hint("Run 'aocrun help' for usage.")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
}

// parseGlobalFlags extracts global flags from anywhere in the argument list.
// Unknown flags are left in place for the command to reject.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			opts.Quiet = true
		case "-v", "--verbose":
			opts.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	return opts, remaining, nil
}

func printUsage(w *output.Writer) {
	w.HelpTitle("aocrun - scaffold and run Advent of Code solutions")

	w.HelpSection("Usage:")
	w.HelpUsage("aocrun <command> <day> [flags]")

	w.HelpSection("Commands:")
	w.HelpCommand("setup <day>", "Fetch input and create day-NN with a solution stub", helpCommandWidth)
	w.HelpCommand("day <day>", "Run and time the day's Part1 and Part2", helpCommandWidth)
	w.HelpCommand("run <day>", "Alias for day", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample("aocrun setup 1", "Create src/day-01 with today's input")
	w.HelpExample("aocrun day 1", "Run the solution for day 1")
	w.Println("")
}

func printGlobalFlags(w *output.Writer) {
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (results and errors only)", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Debug logging", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Environment:")
	w.HelpEnvVar("SESSION", "Session cookie for input requests", helpEnvWidth)
	w.HelpEnvVar("YEAR", "Latest accepted puzzle year", helpEnvWidth)
	w.HelpEnvVar("AOC_YEAR", "Puzzle year to fetch (default: current year)", helpEnvWidth)
	w.HelpEnvVar("AOC_ROOT", "Solutions directory (default: src)", helpEnvWidth)
	w.HelpEnvVar("AOC_BASE_URL", "Input endpoint origin", helpEnvWidth)
	w.HelpEnvVar("AOC_DEBUG", "Enable debug logging", helpEnvWidth)
}
