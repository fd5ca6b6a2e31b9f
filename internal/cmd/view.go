package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maxchv/crewplan/internal/config"
	"github.com/maxchv/crewplan/internal/document"
	"github.com/maxchv/crewplan/internal/errors"
	"github.com/maxchv/crewplan/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [result-file]",
	Short: "Browse a result document interactively",
	Long: `Open an interactive browser over a result document: pick a task to see its
ranked teams, cheapest first.

Without an argument, the configured output path is opened (default
"result.yaml").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	path := config.Get().Paths.Output
	if assignOutput != "" {
		path = assignOutput
	}
	if len(args) == 1 {
		path = args[0]
	}

	result, err := document.LoadResult(path)
	if err != nil {
		return errors.NewDocumentError("failed to load result", err).WithPath(path)
	}

	return tui.Run(result)
}
