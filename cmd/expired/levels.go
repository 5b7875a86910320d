package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func runLevels(cmd *cobra.Command, opts *options) error {
	loader, err := opts.loader()
	if err != nil {
		return err
	}
	nums, err := loader.LevelNumbers()
	if err != nil {
		return err
	}
	if len(nums) == 0 {
		return fmt.Errorf("failed to find levels in %s", loader.BasePath())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tNAME\tGOAL\tPILLS\tPLATFORMS\tTIME")
	for _, n := range nums {
		level, err := loader.LoadLevel(n)
		if err != nil {
			_ = w.Flush()
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%.0fs\n",
			n, level.Name, level.Goal, len(level.Pills), len(level.Platforms), level.TimeLimit)
	}
	return w.Flush()
}
