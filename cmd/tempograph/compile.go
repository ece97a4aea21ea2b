package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempograph/schedule"
	"github.com/katalvlaran/tempograph/scenario"
)

func newCompileCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <scenario.yaml>",
		Short: "Load a scenario and report whether it is feasible.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			path := args[0]

			s, _, err := scenario.Load(path)
			if err != nil {
				return err
			}

			if err := s.Compile(); err != nil {
				var nc *schedule.NegativeCycle
				if errors.As(err, &nc) {
					fmt.Printf("infeasible: %v\n", nc)

					return nil
				}

				return err
			}
			log.Info("schedule is feasible", "run_id", s.RunID())
			fmt.Println("feasible")

			return nil
		},
	}

	return cmd
}
