package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxchv/crewplan/internal/config"
	"github.com/maxchv/crewplan/internal/errors"
)

// ErrUsage marks command-line usage errors so main can exit with status 2.
var ErrUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:   "crewplan",
	Short: "Assign skill-covering teams to tasks",
	Long: `Crewplan reads a YAML document with a task list and a roster of people,
assembles candidate teams per task whose combined skills cover the task's
requirements, removes redundant members, deduplicates equivalent teams, and
ranks each task's teams by total salary, cheapest first. The result is
written as a YAML document.`,
	RunE:          runAssign,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/crewplan/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().StringVarP(&assignInput, "in", "i", "", "input document path (default \"test/task.yaml\")")
	rootCmd.PersistentFlags().StringVarP(&assignOutput, "out", "o", "", "output document path (default \"result.yaml\")")
	rootCmd.PersistentFlags().StringVar(&assignOnly, "only", "", "process only tasks whose name matches this glob pattern")
	rootCmd.PersistentFlags().IntVar(&assignWorkers, "workers", 0, "tasks solved concurrently (0 = one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&assignStrict, "strict", false, "treat input diagnostics as fatal")
	rootCmd.PersistentFlags().BoolVarP(&assignQuiet, "quiet", "q", false, "suppress the summary report")

	// Flag parse failures are usage errors: usage goes to stderr and the
	// process exits with status 2.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/crewplan")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CREWPLAN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CREWPLAN_SOLVER_WORKERS for solver.workers
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
