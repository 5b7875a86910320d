package playing

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/expired/internal/application/replay"
	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/session"
	"github.com/younwookim/expired/internal/application/state"
	"github.com/younwookim/expired/internal/application/system"
	"github.com/younwookim/expired/internal/ecs"
	"github.com/younwookim/expired/internal/infrastructure/config"
	"github.com/younwookim/expired/internal/infrastructure/progress"
)

const frame = 1.0 / 60.0

// idleLevel keeps the player standing on a platform far from the patient
const idleLevel = `
name: Idle
time_limit: 0.5
goal: 0
patient: {x: 2000, y: 0}
platforms:
  - {x: 0, y: -100}
labels:
  - {text: hello, x: 0, y: 100}
`

// goalLevel spawns the patient on top of the player
const goalLevel = `
name: Goal
time_limit: 10
goal: 0
patient: {x: 0, y: 0}
platforms:
  - {x: 0, y: -100}
`

type mockMenu struct{}

func (mockMenu) Update(float64) (scene.Scene, error) { return nil, nil }
func (mockMenu) Draw(*ebiten.Image)                  {}
func (mockMenu) OnEnter()                            {}
func (mockMenu) OnExit()                             {}

// createTestEnv creates an env over in-memory levels
func createTestEnv(levels map[int]string) *Env {
	fsys := fstest.MapFS{}
	for n, data := range levels {
		fsys[config.LevelPath(n)] = &fstest.MapFile{Data: []byte(data)}
	}
	return &Env{
		Tuning:   config.DefaultTuning(),
		Levels:   config.NewLevelSource(config.NewFSLoader(fsys, "mem")),
		Progress: progress.NewStore(""),
		Seed:     func() int64 { return 42 },
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
	var _ scene.Scene = (*Result)(nil)
	var _ scene.Stater = (*Playing)(nil)
	var _ scene.Stater = (*Result)(nil)
}

func TestPlaying_OnEnter(t *testing.T) {
	env := createTestEnv(map[int]string{1: idleLevel, 2: goalLevel})
	env.Progress.Set(2)

	p := New(env)
	p.OnEnter()
	defer p.OnExit()

	require.NoError(t, p.err)
	assert.True(t, p.session.Active())
	assert.Equal(t, 2, p.session.LevelNumber())
	assert.NotEqual(t, ecs.NoEntity, p.session.Player())
	assert.Equal(t, state.StateLevel, p.State())
}

func TestPlaying_OnEnter_UnknownLevelFallsBack(t *testing.T) {
	env := createTestEnv(map[int]string{1: idleLevel})
	env.Progress.Set(9)

	p := New(env)
	p.OnEnter()
	defer p.OnExit()

	require.NoError(t, p.err)
	assert.Equal(t, 1, p.session.LevelNumber())
}

func TestPlaying_Update_ReturnsLoadError(t *testing.T) {
	p := New(createTestEnv(nil))
	p.OnEnter()

	next, err := p.Update(frame)
	assert.Error(t, err)
	assert.Nil(t, next)
}

func TestPlaying_OnExit(t *testing.T) {
	p := New(createTestEnv(map[int]string{1: idleLevel}))
	p.OnEnter()

	p.OnExit()

	assert.False(t, p.session.Active())
	assert.Equal(t, 0, p.session.World().Count(ecs.KindPlatform))
	assert.Equal(t, 0, p.session.World().Count(ecs.KindLabel))
}

func TestPlaying_Step_StaysWhilePlaying(t *testing.T) {
	p := New(createTestEnv(map[int]string{1: idleLevel}))
	p.OnEnter()
	defer p.OnExit()

	next, err := p.step(frame, system.InputState{})
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestPlaying_Step_TimeoutShowsGameOver(t *testing.T) {
	env := createTestEnv(map[int]string{1: idleLevel, 2: goalLevel})
	p := New(env)
	p.OnEnter()
	defer p.OnExit()

	var next scene.Scene
	for i := 0; i < 60 && next == nil; i++ {
		var err error
		next, err = p.step(frame, system.InputState{})
		require.NoError(t, err)
	}

	result, ok := next.(*Result)
	require.True(t, ok, "level end switches to the result screen")
	assert.Equal(t, state.StateGameOver, result.State())
	assert.Equal(t, session.CauseTimeout, result.Summary().Cause)
	assert.Equal(t, "Idle", result.Summary().Name)
	assert.Equal(t, 1, env.Progress.Level(), "game over keeps the level")

	headline, prompt := result.Message()
	assert.Contains(t, headline, "EXPIRED!")
	assert.Contains(t, prompt, "Try again?")
}

func TestPlaying_Step_CompletionAdvancesProgress(t *testing.T) {
	tests := []struct {
		name   string
		levels map[int]string
		want   int
	}{
		{"next level", map[int]string{1: goalLevel, 2: idleLevel}, 2},
		{"wraps after last", map[int]string{1: goalLevel}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestEnv(tt.levels)
			p := New(env)
			p.OnEnter()
			defer p.OnExit()

			next, err := p.step(frame, system.InputState{})
			require.NoError(t, err)

			result, ok := next.(*Result)
			require.True(t, ok)
			assert.Equal(t, state.StateLevelCompleted, result.State())
			assert.Equal(t, tt.want, env.Progress.Level())

			_, prompt := result.Message()
			assert.Contains(t, prompt, "Next level?")
		})
	}
}

func TestPlaying_WithRecorder(t *testing.T) {
	env := createTestEnv(map[int]string{1: idleLevel})
	env.RecordPath = filepath.Join(t.TempDir(), "test_replay.json")

	p := New(env)
	p.OnEnter()
	require.NotNil(t, p.recorder)

	_, _ = p.step(frame, system.InputState{Right: true})
	_, _ = p.step(frame, system.InputState{JumpPressed: true})
	assert.Equal(t, 2, p.recorder.FrameCount())

	p.OnExit()
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(env.RecordPath)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, 1, data.Level)
	assert.Len(t, data.Frames, 2)
	assert.True(t, data.Frames[1].JP)
}

func TestResult_Choose(t *testing.T) {
	env := createTestEnv(map[int]string{1: idleLevel})
	r := NewResult(env, Summary{Outcome: session.OutcomeGameOver, Cause: session.CauseOutOfBounds})

	assert.Nil(t, r.choose(false, false))
	assert.Nil(t, r.choose(false, true), "no menu configured")
	assert.IsType(t, &Playing{}, r.choose(true, false))

	env.Menu = func() scene.Scene { return mockMenu{} }
	assert.Equal(t, mockMenu{}, r.choose(true, true), "back wins over continue")

	headline, _ := r.Message()
	assert.Contains(t, headline, "YOU FELL")
}
