package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempograph/scenario"
)

func newIntervalCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval <scenario.yaml> <from> <to>",
		Short: "Print the admissible interval between two named events.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			path, from, to := args[0], args[1], args[2]

			s, names, err := scenario.Load(path)
			if err != nil {
				return err
			}
			u, ok := names[from]
			if !ok {
				return fmt.Errorf("tempograph: unknown event %q", from)
			}
			v, ok := names[to]
			if !ok {
				return fmt.Errorf("tempograph: unknown event %q", to)
			}

			iv, err := s.Interval(u, v)
			if err != nil {
				return fmt.Errorf("tempograph: interval(%s, %s): %w", from, to, err)
			}
			log.Debug("computed interval", "run_id", s.RunID(), "from", from, "to", to)

			enc, err := json.Marshal(iv)
			if err != nil {
				return err
			}
			fmt.Println(string(enc))

			return nil
		},
	}

	return cmd
}
