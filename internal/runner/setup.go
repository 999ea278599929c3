// Package runner implements the setup and run pipelines for a puzzle day.
package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/aocrun/internal/config"
	aocerrors "github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/fetch"
	"github.com/AndreyAkinshin/aocrun/internal/naming"
	"github.com/AndreyAkinshin/aocrun/internal/output"
	"github.com/AndreyAkinshin/aocrun/internal/validate"
	"github.com/AndreyAkinshin/aocrun/internal/workspace"
)

// Fetcher retrieves a day's puzzle input.
type Fetcher interface {
	Fetch(ctx context.Context, req fetch.Request) (string, error)
}

// Setup scaffolds a new day's workspace.
type Setup struct {
	Config    *config.Config
	Workspace *workspace.Workspace
	Fetcher   Fetcher
	Out       *output.Writer
	Log       *zap.Logger
}

// Run creates the workspace for day. An existing workspace is left untouched
// and reported; a failed fetch degrades to an empty input file. The returned
// error is non-nil only when the day is out of range or the workspace could
// not be written.
func (s *Setup) Run(ctx context.Context, day int) error {
	log := logger(s.Log).With(zap.Int("day", day))

	if err := validate.Day(day); err != nil {
		s.Out.WrongDay(validate.MinDay, validate.MaxDay, "aocrun setup 1")
		return err
	}

	if s.Workspace.Exists(day) {
		log.Debug("workspace exists", zap.String("dir", s.Workspace.Dir(day)))
		s.Out.AlreadyExists(day)
		return nil
	}

	// An out-of-range year is reported but the fetch is still attempted.
	year := s.Config.Year
	if err := validate.Year(year, s.Config.MaxYear); err != nil {
		log.Warn("year out of range", zap.Error(err))
		s.Out.WrongYear(validate.MinYear, s.Config.MaxYear)
	}

	s.Out.FetchingInput()
	input, err := s.Fetcher.Fetch(ctx, fetch.Request{Day: day, Year: year})
	if err != nil {
		log.Warn("input unavailable", zap.Error(aocerrors.Fetch(day, err)))
		s.Out.FetchFailed()
		input = ""
	}

	name := naming.FormatDay(day)
	s.Out.SettingUp(name)
	if err := s.Workspace.Create(ctx, day, input, naming.GenerateTemplate(day)); err != nil {
		s.Out.SetupFailed(err)
		return aocerrors.Write(day, err)
	}

	log.Debug("workspace created", zap.String("dir", s.Workspace.Dir(day)), zap.Int("input_bytes", len(input)))
	s.Out.SetupSucceeded(name)
	return nil
}

func logger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
