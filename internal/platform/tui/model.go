package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-glider/internal/core"
	"github.com/vovakirdan/tui-glider/internal/glider"
	"github.com/vovakirdan/tui-glider/internal/storage"
)

// toastSeconds is how long a notification stays on screen.
const toastSeconds = 3

// Model is the Bubble Tea model driving the game loop: it owns the tick
// driver, folds queued input into per-tick frames, and reacts to run
// events by persisting high scores and showing toasts.
type Model struct {
	game       *glider.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	toast      toast
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The stored high score is read once here and fed into the game;
// a missing or unreadable record counts as zero.
func NewModel(game *glider.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if store != nil {
		if hs, err := store.HighScore(glider.GameID); err == nil {
			game.SetHighScore(hs)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Mid-run the buffer just
// grows or clips; outside a run the game is re-laid-out for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Phase != core.PhasePlaying {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Started {
		m.toast = newToast("Run started - good luck!", false, toastSeconds*m.config.TickRate)
	}

	if end := result.Ended; end != nil {
		if end.NewHigh {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveHighScore(glider.GameID, end.Score)
			}
			m.toast = newToast(fmt.Sprintf("New high score: %d!", end.Score), true,
				toastSeconds*m.config.TickRate)
		} else {
			m.toast = newToast(fmt.Sprintf("Game over - score %d, best %d", end.Score, end.HighScore),
				false, toastSeconds*m.config.TickRate)
		}
	}

	m.toast.tick()
	m.inputFrame.Clear()

	if m.quitting {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	// The toast bar replaces the bottom row while active.
	if m.toast.active() {
		rows := strings.Split(out, "\n")
		rows[len(rows)-1] = m.toast.render()
		out = strings.Join(rows, "\n")
	}

	return out
}

// Run starts the Bubble Tea program for the given game.
// A render surface without positive dimensions is a fatal precondition;
// the loop never starts against it.
func Run(game *glider.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		return fmt.Errorf("tui: render surface has no dimensions (%dx%d)", cfg.ScreenW, cfg.ScreenH)
	}

	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse click doubles as activation
	)

	_, err := p.Run()
	return err
}
