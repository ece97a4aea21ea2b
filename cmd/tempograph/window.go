package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tempograph/scenario"
)

func newWindowCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window <scenario.yaml> <event>",
		Short: "Print the admissible window of a named event relative to Root.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			path, name := args[0], args[1]

			s, names, err := scenario.Load(path)
			if err != nil {
				return err
			}
			e, ok := names[name]
			if !ok {
				return fmt.Errorf("tempograph: unknown event %q", name)
			}

			w, err := s.Window(e)
			if err != nil {
				return fmt.Errorf("tempograph: window(%s): %w", name, err)
			}
			log.Debug("computed window", "run_id", s.RunID(), "event", name)

			enc, err := json.Marshal(w)
			if err != nil {
				return err
			}
			fmt.Println(string(enc))

			return nil
		},
	}

	return cmd
}
