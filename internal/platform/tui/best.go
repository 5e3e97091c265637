package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-glider/internal/glider"
	"github.com/vovakirdan/tui-glider/internal/storage"
)

// Best screen styling
var (
	bestTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")).
			MarginBottom(1)

	bestBorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// BestKeyMap defines the key bindings for the best-score screen.
type BestKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BestKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BestKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Quit}}
}

// DefaultBestKeyMap returns default key bindings.
func DefaultBestKeyMap() BestKeyMap {
	return BestKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "enter"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BestModel is the Bubble Tea model for the best-score screen.
type BestModel struct {
	table    table.Model
	help     help.Model
	keys     BestKeyMap
	width    int
	height   int
	quitting bool
}

// NewBestModel creates the best-score screen from the stored record.
func NewBestModel(store *storage.Store, width, height int) BestModel {
	columns := []table.Column{
		{Title: "Game", Width: 14},
		{Title: "Best", Width: 8},
		{Title: "Set on", Width: 18},
	}

	rows := []table.Row{{"Gap Glider", "0", "-"}}
	if store != nil {
		if best, err := store.BestFor(glider.GameID); err == nil && best != nil {
			rows = []table.Row{{
				"Gap Glider",
				strconv.Itoa(best.Score),
				best.UpdatedAt.Format("2006-01-02 15:04"),
			}}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(3),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14"))
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return BestModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultBestKeyMap(),
		width:  width,
		height: height,
	}
}

// Init is a no-op; the screen is static.
func (m BestModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the best-score screen.
func (m BestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the best-score screen.
func (m BestModel) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		bestTitleStyle.Render("High Score"),
		m.table.View(),
		"",
		m.help.View(m.keys),
	)

	box := bestBorderStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// RunBest shows the best-score screen.
func RunBest(store *storage.Store, width, height int) error {
	model := NewBestModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

