// Package cmd provides the root command and CLI setup for mutoracle.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutoracle.dev/pkg/mutoracle/internal/adapter"
	"mutoracle.dev/pkg/mutoracle/internal/controller"
	"mutoracle.dev/pkg/mutoracle/internal/domain/equiv"
)

var machineFiles adapter.MachineFileAdapter
var checker *equiv.Checker
var ui controller.UI

// logFileFlag overrides the configured log file.
var logFileFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// seedFlag seeds every randomized component of a command.
var seedFlag uint64

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	machineFiles = adapter.NewLocalMachineFileAdapter()
	checker = equiv.NewChecker()

	// Subcommands read viper defaults for their flags, so they are built
	// after config init.
	rootCmd.AddCommand(
		newCheckCmd(),
		newMutantsCmd(),
		newDiffCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
}

const machineFileHelp = `Machines are read from YAML files:

  initial: q0
  inputs: [a, b]
  transitions:
    - {from: q0, input: a, to: q1, output: "0"}
    - ...`

const rootLongDescription = `Mutoracle is a mutation-based equivalence oracle for active automata
learning. It mutates a hypothesis Mealy machine, selects test traces that
kill the most mutants and runs them against the system under learning
until one exposes a difference.

` + machineFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutoracle",
		Short: "Mutation-based equivalence oracle for Mealy machines",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().Uint64Var(&seedFlag, seedFlagName, defaultSeed, "seed for sampling, generation and selection")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedFlagName), seedConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
