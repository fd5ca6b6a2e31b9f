package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maxchv/crewplan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View crewplan configuration",
	Long: `View crewplan configuration.

Without arguments, displays the effective configuration after merging the
config file, CREWPLAN_* environment variables, and built-in defaults.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
}

// effectiveConfig mirrors config.Config with yaml tags so the printed shape
// matches what a config file would contain.
type effectiveConfig struct {
	Paths struct {
		Input   string `yaml:"input"`
		Output  string `yaml:"output"`
		LogFile string `yaml:"log_file"`
	} `yaml:"paths"`
	Solver struct {
		Workers int  `yaml:"workers"`
		Strict  bool `yaml:"strict"`
	} `yaml:"solver"`
	Logging struct {
		Enabled bool   `yaml:"enabled"`
		Level   string `yaml:"level"`
	} `yaml:"logging"`
	Report struct {
		Enabled bool `yaml:"enabled"`
		Width   int  `yaml:"width"`
	} `yaml:"report"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var out effectiveConfig
	out.Paths.Input = cfg.Paths.Input
	out.Paths.Output = cfg.Paths.Output
	out.Paths.LogFile = cfg.Paths.LogFile
	out.Solver.Workers = cfg.Solver.Workers
	out.Solver.Strict = cfg.Solver.Strict
	out.Logging.Enabled = cfg.Logging.Enabled
	out.Logging.Level = cfg.Logging.Level
	out.Report.Enabled = cfg.Report.Enabled
	out.Report.Width = cfg.Report.Width

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}
