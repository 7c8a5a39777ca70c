package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	noBorders := snake.BorderChances{None: 1}
	g, err := snake.NewWithBorders(10, 10, rand.New(rand.NewSource(3)), noBorders)
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 10, 11
	pace := config.NewPace(config.DefaultSnakeConfig().Pace)
	return NewModel(g, pace, cfg, nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func TestNewModelPreparesLevel(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 1, m.levels)
	assert.Equal(t, snake.DirRight, m.direction)
	assert.NotEmpty(t, m.runID)
	assert.Equal(t, snake.Location{X: 5, Y: 5}, m.game.SnakeHead())
	assert.Len(t, m.game.Field().Locations(snake.KindFood), 1)
	assert.NotNil(t, m.Init())
}

func TestTickAdvancesSnake(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "tick must schedule the next tick")
	assert.Equal(t, snake.Location{X: 6, Y: 5}, m.game.SnakeHead())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, snake.DirUp, m.direction)

	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, snake.Location{X: 6, Y: 4}, m.game.SnakeHead())
}

func TestIllegalMoveRestartsLevel(t *testing.T) {
	m := newTestModel(t)
	m.direction = snake.DirUp
	m.game.Field().Set(5, 4, snake.BlockCell())

	m, _ = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, 2, m.levels)
	assert.Equal(t, snake.DirRight, m.direction, "direction resets after a restart")
	assert.Equal(t, snake.Location{X: 5, Y: 5}, m.game.SnakeHead())
	assert.Equal(t, 0, m.game.Score())
	assert.Empty(t, m.game.Field().Locations(snake.KindBlock))
}

func TestPauseStopsSteps(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyRunes("p"))
	require.True(t, m.paused)

	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, snake.Location{X: 5, Y: 5}, m.game.SnakeHead())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Contains(t, m.View(), "Paused")

	m, _ = update(t, m, keyRunes("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, snake.Location{X: 6, Y: 5}, m.game.SnakeHead())
}

func TestPaceKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyRunes("+"))
	assert.Equal(t, 100*time.Millisecond, m.pace.Interval())

	m, _ = update(t, m, keyRunes("-"))
	m, _ = update(t, m, keyRunes("-"))
	assert.Equal(t, 200*time.Millisecond, m.pace.Interval())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, keyRunes("?"))
	require.True(t, m.showHelp)
	view := m.View()
	for _, want := range []string{"faster", "slower", "pause", "quit"} {
		assert.Contains(t, view, want)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, snake.Location{X: 5, Y: 5}, m.game.SnakeHead(), "help pauses the game")

	m, _ = update(t, m, keyRunes("?"))
	assert.False(t, m.showHelp)
}

func TestHelpFitsScreen(t *testing.T) {
	for _, width := range []int{30, 40, 60} {
		m := newTestModel(t)
		m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 24})
		m, _ = update(t, m, keyRunes("?"))

		for _, line := range strings.Split(m.View(), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d: %q", width, line)
		}
	}
}

func TestStatusLineFitsScreen(t *testing.T) {
	for _, width := range []int{40, 60, 80} {
		m := newTestModel(t)
		m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 24})

		line := m.statusLine()
		assert.Contains(t, line, "Score: 0")
		assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d: %q", width, line)
	}

	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.statusLine(), "q quit")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGreen)
	s.DrawText(3, 0, "de")
	s.SetColored(7, 1, glyphFood, core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "abc")
	assert.Contains(t, lines[0], "de")
	assert.Contains(t, lines[1], string(glyphFood))
	assert.Equal(t, 8, lipgloss.Width(lines[0]))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keyRunes("q"))

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, string(glyphHead))
	assert.Contains(t, view, string(glyphBody))
	assert.Contains(t, view, string(glyphFood))
	assert.Contains(t, view, "Score: 0")
}

func TestResizeKeepsField(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 4})

	assert.Equal(t, 6, m.screen.Width())
	assert.Equal(t, 3, m.screen.Height())
	assert.Equal(t, snake.Size{Width: 10, Height: 10}, m.game.Size())
	assert.Len(t, strings.Split(RenderScreen(m.screen), "\n"), 3)
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"vim k", keyRunes("k"), core.ActionUp},
		{"wasd a", keyRunes("a"), core.ActionLeft},
		{"plus", keyRunes("+"), core.ActionFaster},
		{"minus", keyRunes("-"), core.ActionSlower},
		{"pause", keyRunes("p"), core.ActionPause},
		{"help", keyRunes("?"), core.ActionHelp},
		{"quit", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRunes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.MapKey(tc.msg))
		})
	}
}

func TestDrawOverlay(t *testing.T) {
	s := core.NewScreen(20, 5)
	DrawOverlay(s, "Hi")

	assert.Equal(t, 'H', s.Get(9, 2))
	assert.Equal(t, '┌', s.Get(7, 1))
}
