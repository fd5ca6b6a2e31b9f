package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/maxchv/crewplan/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run team assignment whenever the input document changes",
	Long: `Watch the input document and re-run the full team assignment each time it
is written. Useful while iterating on a roster or task list in an editor.

The containing directory is watched rather than the file itself, so editors
that replace the file on save (write to a temp file, then rename) are handled
correctly.`,
	RunE: runWatch,
}

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 200 * time.Millisecond

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	logger = logger.WithComponent("watch")

	in, out := resolvePaths(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(in)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// First pass up front so the result reflects the file as it is now.
	if err := runAssignment(ctx, cfg, logger, in, out); err != nil {
		logger.Error("assignment failed", "error", err.Error())
	}

	fmt.Fprintf(os.Stderr, "Watching %s... (Ctrl+C to stop)\n", in)

	target := filepath.Clean(in)
	var debounce *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}
			debounceCh = debounce.C

		case <-debounceCh:
			debounceCh = nil
			logger.Info("input changed, re-running assignment", "path", in)
			if err := runAssignment(ctx, cfg, logger, in, out); err != nil {
				// Keep watching: a half-saved file will decode
				// on the next write.
				logger.Error("assignment failed", "error", err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err.Error())
		}
	}
}
