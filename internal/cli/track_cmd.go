package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/loading"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// criteriaFlags are the goal criteria settable from the command line.
type criteriaFlags struct {
	fs       *pflag.FlagSet
	timeline int
	unit     string
	level    string
}

func newCriteriaFlags() *criteriaFlags {
	f := &criteriaFlags{fs: pflag.NewFlagSet("criteria", pflag.ContinueOnError)}
	f.fs.IntVar(&f.timeline, "timeline", domain.DefaultTimeline.Value, "timeline length")
	f.fs.StringVar(&f.unit, "unit", string(domain.DefaultTimeline.Unit), "timeline unit (days, weeks, months)")
	f.fs.StringVar(&f.level, "level", string(domain.LevelBeginner), "experience level (beginner, intermediate, advanced)")
	return f
}

// patch builds a GoalPatch from the flags the user actually set, so a
// template's own timeline and level survive when no flag overrides them.
func (f *criteriaFlags) patch() (domain.GoalPatch, error) {
	var p domain.GoalPatch
	if f.fs.Changed("timeline") || f.fs.Changed("unit") {
		unit := domain.TimeUnit(f.unit)
		if !domain.ValidTimeUnits[unit] {
			return p, &domain.InvalidInputError{Field: "timeline.unit", Reason: fmt.Sprintf("%q must be one of days, weeks, months", f.unit)}
		}
		p.Timeline = &domain.Duration{Value: f.timeline, Unit: unit}
	}
	if f.fs.Changed("level") {
		lvl, err := domain.ParseExperienceLevel(f.level)
		if err != nil {
			return p, err
		}
		p.ExperienceLevel = &lvl
	}
	return p, nil
}

// mergeTimeline fills the half of the timeline the user did not set from
// the goal, so "--unit months" keeps the goal's value.
func (f *criteriaFlags) mergeTimeline(p *domain.GoalPatch, goal domain.Goal) {
	if p.Timeline == nil {
		return
	}
	if !f.fs.Changed("timeline") {
		p.Timeline.Value = goal.Criteria.Timeline.Value
	}
	if !f.fs.Changed("unit") {
		p.Timeline.Unit = goal.Criteria.Timeline.Unit
	}
}

func newTrackCmd(app *App) *cobra.Command {
	var templateID, goalText string
	var noWait bool
	criteria := newCriteriaFlags()

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Generate a project track for a goal",
		Example: `  goalpath track --template 1
  goalpath track --template 2 --timeline 6 --unit months
  goalpath track --goal "Learn TypeScript by building web apps" --level intermediate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goal, err := resolveGoal(ctx, app, templateID, goalText)
			if err != nil {
				return err
			}

			patch, err := criteria.patch()
			if err != nil {
				return err
			}
			criteria.mergeTimeline(&patch, goal)
			if !patch.Empty() {
				if goal, err = app.Goals.Edit(ctx, goal, patch); err != nil {
					return err
				}
			}

			goal, advice, err := app.Goals.Submit(ctx, goal)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatAdvice(advice))
				return err
			}
			goal = app.Goals.Confirm(ctx, goal)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatGoal(goal))
			if tips := formatter.FormatAdvice(advice); tips != "" {
				fmt.Fprintln(out, tips)
			}

			track, err := generateTrack(ctx, app, goal, !noWait, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatTrack(track, -1))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "start from the catalog entry with this ID")
	cmd.Flags().StringVar(&goalText, "goal", "", "start from this goal text")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "skip the loading phase")
	cmd.Flags().AddFlagSet(criteria.fs)
	cmd.MarkFlagsMutuallyExclusive("template", "goal")
	cmd.MarkFlagsOneRequired("template", "goal")

	return cmd
}

// resolveGoal creates the goal the track command starts from: a
// personalized copy of a template, or a blank goal given goalText.
func resolveGoal(ctx context.Context, app *App, templateID, goalText string) (domain.Goal, error) {
	if templateID != "" {
		tmpl, err := app.Templates.Lookup(ctx, templateID)
		if err != nil {
			return domain.Goal{}, err
		}
		return app.Goals.CreateFromTemplate(ctx, tmpl), nil
	}
	if strings.TrimSpace(goalText) == "" {
		return domain.Goal{}, &domain.InvalidInputError{Field: "text", Reason: "describe what you want to learn"}
	}
	return app.Goals.Edit(ctx, app.Goals.CreateBlank(ctx), domain.TextPatch(goalText))
}

// generateTrack builds the track while the Loading phase runs, drawing a
// spinner on w. The track is returned once both are done.
func generateTrack(ctx context.Context, app *App, goal domain.Goal, wait bool, w io.Writer) (*domain.Track, error) {
	if !wait {
		return app.Tracks.Build(ctx, goal)
	}

	tips, err := app.Tracks.Tips(ctx)
	if err != nil {
		return nil, err
	}
	opts := app.Loading
	opts.ContentCount = len(tips)
	task := loading.Start(ctx, opts)
	defer task.Cancel()

	type built struct {
		track *domain.Track
		err   error
	}
	result := make(chan built, 1)
	go func() {
		t, err := app.Tracks.Build(ctx, goal)
		result <- built{t, err}
	}()

	spinner := formatter.NewSpinner(w)
	message := "Generating your learning track..."
	for ev := range task.Events() {
		if ev.Kind == loading.EventContent && len(tips) > 0 {
			message = tips[ev.ContentIndex].Content
		}
		spinner.Render(ev.Progress, formatter.Truncate(message, 60))
	}
	spinner.Clear()

	if err := task.Wait(); err != nil {
		return nil, fmt.Errorf("loading: %w", err)
	}
	r := <-result
	return r.track, r.err
}
