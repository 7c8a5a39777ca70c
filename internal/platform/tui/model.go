package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake game.
// The game and pace are pointers, so copies of Model share them.
type Model struct {
	game      *snake.Game
	pace      *config.Pace
	screen    *core.Screen
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	direction snake.Direction
	runID     string
	levels    int
	best      int
	width     int
	height    int
	paused    bool
	showHelp  bool
	quitting  bool
}

// NewModel creates a model and prepares the first level.
func NewModel(game *snake.Game, pace *config.Pace, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()

	m := Model{
		game:      game,
		pace:      pace,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		logger:    logger,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.restart()
	return m
}

// restart prepares a fresh level and resets the requested direction.
func (m *Model) restart() {
	m.game.PrepareLevel()
	m.direction = snake.DirRight
	m.runID = uuid.NewString()
	m.levels++

	snap := m.game.Snapshot()
	m.logger.Info("level prepared",
		"run", m.runID,
		"level", m.levels,
		"size", fmt.Sprintf("%dx%d", m.game.Size().Width, m.game.Size().Height),
		"blocks", snap.Blocks,
		"food", snap.Food,
	)
}

// Init starts the step loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pace.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)
	if action.IsMove() {
		m.direction = actionDirection(action)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "run", m.runID, "score", m.game.Score(), "best", m.best)
		return m, tea.Quit
	case core.ActionFaster:
		if m.pace.Faster() {
			m.logger.Debug("pace changed", "interval", m.pace.Interval())
		}
	case core.ActionSlower:
		m.pace.Slower()
		m.logger.Debug("pace changed", "interval", m.pace.Interval())
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// handleResize processes window resize events.
// The field keeps its size; only the visible area changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	return m, nil
}

// handleTick advances the game by one step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused || m.showHelp {
		return m, tickCmd(m.pace.Interval())
	}

	if err := m.game.HandleNextStep(m.direction); err != nil {
		m.logger.Debug("illegal move, restarting level", "run", m.runID, "err", err, "score", m.game.Score())
		m.restart()
	}
	m.best = max(m.best, m.game.Score())

	return m, tickCmd(m.pace.Interval())
}

// actionDirection maps a move action to a snake direction.
func actionDirection(a core.Action) snake.Direction {
	switch a {
	case core.ActionUp:
		return snake.DirUp
	case core.ActionDown:
		return snake.DirDown
	case core.ActionLeft:
		return snake.DirLeft
	default:
		return snake.DirRight
	}
}

// statusLine returns the bottom row: score, best score, interval and short help.
// The help is cut to whatever width the score text leaves free.
func (m Model) statusLine() string {
	status := statusStyle.Render(fmt.Sprintf("Score: %d", m.game.Score()))
	info := fmt.Sprintf("  best %d  step %s  ", m.best, m.pace.Interval())
	line := status + info

	free := m.width - lipgloss.Width(line)
	if free <= 0 {
		return line
	}
	h := m.help
	h.Width = free
	return line + h.ShortHelpView(m.keys.ShortHelp())
}

// fullHelp renders the help box sized to fit inside the terminal.
func (m Model) fullHelp() string {
	h := m.help
	h.Width = max(m.width-helpBox.GetHorizontalFrameSize(), 1)
	return helpBox.Render("S N A K E\n\n" + h.FullHelpView(m.keys.FullHelp()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.fullHelp())
	}

	m.screen.Clear()
	DrawField(m.screen, m.game)
	if m.paused {
		DrawOverlay(m.screen, "Paused - press p to continue")
	}

	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// Run starts the Bubble Tea program for the given game.
func Run(game *snake.Game, pace *config.Pace, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, pace, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
