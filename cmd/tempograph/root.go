package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Run builds and executes the tempograph command tree, returning the
// process exit code.
func Run() int {
	rootCmd := &cobra.Command{
		Use:   "tempograph",
		Short: "Load and query Simple Temporal Network scenario files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}

			return nil
		},
	}

	// Flag names are case-insensitive.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newWindowCmd(&verbose),
		newIntervalCmd(&verbose),
		newCompileCmd(&verbose),
	)

	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

func main() {
	os.Exit(Run())
}
