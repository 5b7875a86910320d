package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/younwookim/expired/internal/infrastructure/config"
)

// options holds the flag values shared by the subcommands
type options struct {
	configDir string

	// play
	record string
	save   string
	watch  bool
	level  int

	// sim
	simLevel int
	frames   int
	seed     int64
}

// loader returns a loader over --config-dir, or the embedded configs
func (o *options) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "expired",
		Short:        "race the clock to deliver pills to the patient",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to playing when no command given
			return runPlay(opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory with tuning.json and levels/ (default: embedded)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "open the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts)
		},
	}
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&opts.record, "record", "", "record input to file (e.g. --record replay.json)")
		c.Flags().StringVar(&opts.save, "save", "", "progress file (default: progress is not kept)")
		c.Flags().BoolVar(&opts.watch, "watch", false, "reload level files when they change (needs --config-dir)")
		c.Flags().IntVar(&opts.level, "level", 0, "start at this level instead of the saved one")
	}

	simCmd := &cobra.Command{
		Use:   "sim [replay.json]",
		Short: "play a recording, or an idle run, without a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			replayPath := ""
			if len(args) == 1 {
				replayPath = args[0]
			}
			return runSim(cmd, opts, replayPath)
		},
	}
	simCmd.Flags().IntVar(&opts.simLevel, "level", 1, "level for an idle run")
	simCmd.Flags().IntVar(&opts.frames, "frames", 600, "frames for an idle run")
	simCmd.Flags().Int64Var(&opts.seed, "seed", 1, "side-effect seed for an idle run")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "validate and list levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(cmd, opts)
		},
	}

	rootCmd.AddCommand(playCmd, simCmd, levelsCmd)
	return rootCmd
}
