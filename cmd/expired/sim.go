package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/younwookim/expired/internal/application/replay"
	"github.com/younwookim/expired/internal/application/session"
)

func runSim(cmd *cobra.Command, opts *options, replayPath string) error {
	loader, err := opts.loader()
	if err != nil {
		return err
	}
	tuning, err := loader.LoadTuning()
	if err != nil {
		return err
	}

	var data replay.ReplayData
	if replayPath != "" {
		loaded, err := replay.LoadReplay(replayPath)
		if err != nil {
			return err
		}
		data = *loaded
		log.Printf("Replaying %s (%d frames, seed: %d)", replayPath, len(data.Frames), data.Seed)
	} else {
		data = replay.CreateTestReplayData(opts.frames, tuning.Physics.FixedDT())
		data.Seed = opts.seed
		data.Level = opts.simLevel
	}

	level, err := loader.LoadLevel(data.Level)
	if err != nil {
		return err
	}

	res := replay.Play(tuning, level, replay.NewReplayer(data))

	out := cmd.OutOrStdout()
	if res.Cause != session.CauseNone {
		fmt.Fprintf(out, "level %d %q: %s (%s)\n", data.Level, level.Name, res.Outcome, res.Cause)
	} else {
		fmt.Fprintf(out, "level %d %q: %s\n", data.Level, level.Name, res.Outcome)
	}
	fmt.Fprintf(out, "frames %d  ticks %d  pills %d/%d  remaining %.2fs\n",
		res.Frames, res.Ticks, res.Collected, level.Goal, res.Remaining)
	return nil
}
