package runner

import (
	"context"

	"go.uber.org/zap"

	aocerrors "github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/naming"
	"github.com/AndreyAkinshin/aocrun/internal/output"
	"github.com/AndreyAkinshin/aocrun/internal/solution"
	"github.com/AndreyAkinshin/aocrun/internal/validate"
	"github.com/AndreyAkinshin/aocrun/internal/workspace"
)

// Runner loads a day's solution and reports its timed results.
type Runner struct {
	Workspace *workspace.Workspace
	Loader    solution.Loader
	Out       *output.Writer
	Log       *zap.Logger
}

type partSlot struct {
	icon  string
	label string
	part  solution.Part
}

// Run executes the parts defined by day's solution in order. A part that
// fails is reported and does not stop the other part; the first failure is
// returned after the report is printed.
func (r *Runner) Run(ctx context.Context, day int) error {
	log := logger(r.Log).With(zap.Int("day", day))

	if err := validate.Day(day); err != nil {
		r.Out.WrongDay(validate.MinDay, validate.MaxDay, "aocrun day 1")
		return err
	}

	name := naming.FormatDay(day)
	if !r.Workspace.SolutionExists(day) {
		r.Out.MissingDay(name)
		return aocerrors.NotFound(day, r.Workspace.SolutionPath(day))
	}

	path := r.Workspace.SolutionPath(day)
	module, err := r.Loader.Load(ctx, path)
	if err != nil {
		log.Error("load failed", zap.String("path", path), zap.Error(err))
		r.Out.LoadFailed(name, err)
		return aocerrors.Load(day, err)
	}

	slots := []partSlot{
		{icon: "🌲", label: "Part One", part: module.Part1},
		{icon: "🎄", label: "Part Two", part: module.Part2},
	}

	var (
		results  []output.PartResult
		failures []error
		labels   []string
	)
	for _, slot := range slots {
		res := output.PartResult{Icon: slot.icon, Label: slot.label}
		if slot.part == nil {
			results = append(results, res)
			continue
		}

		m, err := Measure(slot.part)
		log.Debug("part finished", zap.String("part", slot.label), zap.Duration("elapsed", m.Elapsed), zap.Error(err))
		if err != nil {
			failures = append(failures, err)
			labels = append(labels, slot.label)
		} else if m.Result != nil {
			res.Value = m.Result
			res.Elapsed = FormatPerformance(m.Elapsed)
		}
		results = append(results, res)
	}

	r.Out.DayResult(day, results...)
	for i, err := range failures {
		r.Out.PartFailed(labels[i], err)
	}
	if len(failures) > 0 {
		return aocerrors.Wrap(failures[0], labels[0]+" failed")
	}
	return nil
}
