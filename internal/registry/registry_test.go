package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-codebreaker/internal/core"
)

type stubGame struct {
	id      string
	summary string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Summary() string { return g.summary }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id, summary: id + " rules"} })
	t.Cleanup(func() { Unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz-stub-b")
	register(t, "zz-stub-a")

	require.True(t, Exists("zz-stub-a"))

	g, err := Create("zz-stub-b")
	require.NoError(t, err)
	assert.Equal(t, "zz-stub-b", g.ID())

	var ids []string
	for _, info := range List() {
		if info.ID == "zz-stub-a" || info.ID == "zz-stub-b" {
			ids = append(ids, info.ID)
			assert.Equal(t, "Stub "+info.ID, info.Title)
			assert.Equal(t, info.ID+" rules", info.Summary)
		}
	}
	assert.Equal(t, []string{"zz-stub-a", "zz-stub-b"}, ids)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz-missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("zz-missing"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz-dup")
	assert.Panics(t, func() {
		Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	})
}

func TestUnregister(t *testing.T) {
	Register("zz-gone", func() Game { return &stubGame{id: "zz-gone"} })
	Unregister("zz-gone")
	assert.False(t, Exists("zz-gone"))
	Unregister("zz-gone")
}
