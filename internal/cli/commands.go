package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/aocrun/internal/config"
	"github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/fetch"
	"github.com/AndreyAkinshin/aocrun/internal/output"
	"github.com/AndreyAkinshin/aocrun/internal/runner"
	"github.com/AndreyAkinshin/aocrun/internal/solution"
	"github.com/AndreyAkinshin/aocrun/internal/validate"
	"github.com/AndreyAkinshin/aocrun/internal/workspace"
)

// dayCommands describes the commands that take a day argument.
var dayCommands = map[string]struct {
	action  string
	summary string
}{
	"setup": {"set up day", "fetch input and create a solution stub"},
	"day":   {"run day", "run and time a day's solution"},
	"run":   {"run day", "run and time a day's solution"},
}

// newLogger returns a console logger writing to w. Only warnings and errors
// are shown unless debug is set.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Named("aocrun")
}

// loadConfig loads the configuration and reports failures uniformly.
// Returns the config and exit code 0 on success, or nil and the exit code on failure.
func loadConfig(e *env) (*config.Config, int) {
	cfg, err := config.Load(config.Options{Dir: e.dir, Getenv: e.getenv, Now: e.now})
	if err != nil {
		e.out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	return cfg, 0
}

// parseDayArg validates the single positional day argument, printing the
// wrong-day guidance when it is missing or invalid.
func parseDayArg(cmd string, args []string, e *env) (int, int) {
	example := fmt.Sprintf("aocrun %s 1", cmd)
	if len(args) != 1 {
		e.out.WrongDay(validate.MinDay, validate.MaxDay, example)
		return 0, errors.ExitConfigError
	}
	day, err := validate.ParseDay(args[0])
	if err != nil {
		e.out.WrongDay(validate.MinDay, validate.MaxDay, example)
		return 0, errors.GetExitCode(err)
	}
	return day, 0
}

// cmdSetup scaffolds a day's workspace.
func cmdSetup(ctx context.Context, args []string, opts *GlobalOptions, e *env) int {
	if wantsHelp(args) {
		printDayCommandUsage(e.out, "setup")
		return 0
	}

	day, code := parseDayArg("setup", args, e)
	if code != 0 {
		return code
	}

	cfg, code := loadConfig(e)
	if cfg == nil {
		return code
	}

	log := newLogger(e.stderr, opts.Verbose || cfg.Debug)
	defer func() { _ = log.Sync() }()
	log.Debug("configuration loaded", zap.String("file", cfg.File), zap.String("root", cfg.Root), zap.Int("year", cfg.Year))

	s := &runner.Setup{
		Config:    cfg,
		Workspace: workspace.New(cfg.Root),
		Fetcher:   fetch.New(cfg, fetch.WithLogger(log)),
		Out:       e.out,
		Log:       log,
	}
	return exitCode(s.Run(ctx, day), log)
}

// cmdDay runs a day's solution.
func cmdDay(ctx context.Context, cmd string, args []string, opts *GlobalOptions, e *env) int {
	if wantsHelp(args) {
		printDayCommandUsage(e.out, cmd)
		return 0
	}

	day, code := parseDayArg(cmd, args, e)
	if code != 0 {
		return code
	}

	cfg, code := loadConfig(e)
	if cfg == nil {
		return code
	}

	log := newLogger(e.stderr, opts.Verbose || cfg.Debug)
	defer func() { _ = log.Sync() }()
	log.Debug("configuration loaded", zap.String("file", cfg.File), zap.String("root", cfg.Root))

	r := &runner.Runner{
		Workspace: workspace.New(cfg.Root),
		Loader:    solution.NewInterpreter(cfg.Root, log),
		Out:       e.out,
		Log:       log,
	}
	return exitCode(r.Run(ctx, day), log)
}

// exitCode maps a pipeline error to an exit code. Pipelines report their own
// diagnostics, so the error is only logged.
func exitCode(err error, log *zap.Logger) int {
	if err != nil {
		log.Debug("command failed", zap.Error(err))
	}
	return errors.GetExitCode(err)
}

// printDayCommandUsage prints the help text for setup, day and run.
func printDayCommandUsage(w *output.Writer, cmd string) {
	info := dayCommands[cmd]
	titleCase := cases.Title(language.English)

	w.HelpTitle(fmt.Sprintf("aocrun %s - %s", cmd, info.summary))

	w.HelpSection("Usage:")
	w.HelpUsage(fmt.Sprintf("aocrun %s <day> [flags]", cmd))

	w.HelpSection("Arguments:")
	w.HelpFlag("<day>", fmt.Sprintf("Puzzle day, %d to %d", validate.MinDay, validate.MaxDay), helpFlagWidth)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample(fmt.Sprintf("aocrun %s 1", cmd), titleCase.String(info.action+" 1"))
	w.HelpExample(fmt.Sprintf("aocrun %s 25 -v", cmd), titleCase.String(info.action+" 25")+" with debug logging")
	w.Println("")
}
