package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/maxchv/crewplan/internal/assign"
	"github.com/maxchv/crewplan/internal/config"
	"github.com/maxchv/crewplan/internal/document"
	"github.com/maxchv/crewplan/internal/errors"
	"github.com/maxchv/crewplan/internal/logging"
	"github.com/maxchv/crewplan/internal/report"
	"github.com/maxchv/crewplan/internal/roster"
)

var (
	assignInput   string
	assignOutput  string
	assignOnly    string
	assignWorkers int
	assignStrict  bool
	assignQuiet   bool
)

func runAssign(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	in, out := resolvePaths(cfg)
	return runAssignment(ctx, cfg, logger, in, out)
}

// resolvePaths applies flag overrides on top of configured defaults.
func resolvePaths(cfg *config.Config) (in, out string) {
	in, out = cfg.Paths.Input, cfg.Paths.Output
	if assignInput != "" {
		in = assignInput
	}
	if assignOutput != "" {
		out = assignOutput
	}
	return in, out
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Paths.LogFile, cfg.Logging.Level)
}

// runAssignment is the whole pipeline: load the document, lint it, solve
// every task against the roster, write the result, print the summary. It is
// shared by the root command and watch mode.
func runAssignment(ctx context.Context, cfg *config.Config, logger *logging.Logger, in, out string) error {
	// A missing input file only warns here; the read below is still
	// attempted and its failure is the authoritative error.
	if _, err := os.Stat(in); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s is not a path to a file\n", in)
	}

	logger.Info("loading input document", "path", in)
	doc, err := document.Load(in)
	if err != nil {
		return errors.NewDocumentError("failed to load input", err).WithPath(in)
	}

	strict := assignStrict || cfg.Solver.Strict
	if err := lintDocument(doc, logger, strict); err != nil {
		return err
	}

	tasks := assign.FromDocument(doc)
	people := roster.FromDocument(doc)
	logger.Info("input document loaded", "tasks", len(tasks), "people", len(people))

	if len(people) == 0 {
		logger.Warn("roster is empty; no task can be covered")
		if strict {
			return errors.NewValidationError("input document failed strict validation").
				WithField("Peoples").
				WithCause(errors.ErrEmptyRoster)
		}
	}

	tasks, err = filterTasks(tasks)
	if err != nil {
		return err
	}

	workers := cfg.Solver.Workers
	if assignWorkers > 0 {
		workers = assignWorkers
	}
	runner := assign.NewRunner(workers, logger)
	if err := runner.Run(ctx, tasks, people); err != nil {
		return err
	}

	result := assign.Results(tasks)
	if err := document.Save(out, result); err != nil {
		return errors.NewDocumentError("failed to write result", err).WithPath(out)
	}
	logger.Info("result document written", "path", out)

	if cfg.Report.Enabled && !assignQuiet {
		fmt.Print(report.Render(tasks, report.Width(cfg.Report.Width)))
	}
	return nil
}

// lintDocument logs input diagnostics; in strict mode any diagnostic aborts
// the run.
func lintDocument(doc *document.Document, logger *logging.Logger, strict bool) error {
	diags := doc.Lint()
	for _, d := range diags {
		logger.Warn("input diagnostic", "field", d.Field, "detail", d.Message)
	}
	if len(diags) > 0 && strict {
		return errors.NewValidationError("input document failed strict validation").
			WithField(diags[0].Field).
			WithCause(errors.New(diags[0].Message))
	}
	return nil
}

// filterTasks applies the --only glob over task names, preserving order.
// A pattern matching no task at all fails the run rather than silently
// writing an empty result document.
func filterTasks(tasks []*assign.Task) ([]*assign.Task, error) {
	if assignOnly == "" {
		return tasks, nil
	}
	g, err := glob.Compile(assignOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --only pattern %q: %v", ErrUsage, assignOnly, err)
	}
	var filtered []*assign.Task
	for _, t := range tasks {
		if g.Match(t.Name) {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 && len(tasks) > 0 {
		return nil, errors.NewNotFoundError("task", assignOnly).WithCause(errors.ErrNoTasks)
	}
	return filtered, nil
}
