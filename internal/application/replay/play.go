package replay

import (
	"github.com/younwookim/expired/internal/application/session"
	"github.com/younwookim/expired/internal/infrastructure/config"
)

// Result summarizes a headless playback
type Result struct {
	Outcome   session.Outcome
	Cause     session.Cause
	Frames    int
	Ticks     int
	Collected int
	Remaining float64
}

// Play runs a recording against level from the beginning until its frames
// run out or the session reaches a terminal outcome. The session is exited
// before returning.
func Play(tuning *config.Tuning, level *config.LevelConfig, r *Replayer) Result {
	s := session.New(tuning, r.Seed())
	s.Enter(r.Level(), level)
	defer s.Exit()

	for {
		dt, in, ok := r.GetInput()
		if !ok {
			break
		}
		if s.Update(dt, in) != session.OutcomeNone {
			break
		}
	}

	return Result{
		Outcome:   s.Outcome(),
		Cause:     s.Cause(),
		Frames:    s.Frames(),
		Ticks:     s.Ticks(),
		Collected: s.Collected(),
		Remaining: s.Remaining(),
	}
}
