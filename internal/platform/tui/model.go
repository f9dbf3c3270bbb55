package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/g3ner1c/tetris/internal/game"
	"github.com/g3ner1c/tetris/internal/storage"
)

// Model drives one interactive game session.
type Model struct {
	game   *game.Game
	store  *storage.Store
	preset string
	fps    int

	keys GameKeyMap
	help help.Model

	width      int
	height     int
	quitting   bool
	scoreSaved bool
}

// NewModel wraps a game for terminal play. store may be nil when score
// persistence is unavailable.
func NewModel(g *game.Game, store *storage.Store, preset string, fps int) Model {
	return Model{
		game:   g,
		store:  store,
		preset: preset,
		fps:    fps,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Tick()
		if m.game.Lost() && !m.scoreSaved {
			m.scoreSaved = true
			if m.store != nil {
				// Best effort; a full disk should not end the session.
				_, _ = m.store.SaveScore(m.preset, m.game.Score(), m.game.Level(), m.game.Lines())
			}
		}
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		m.game.Pause()

	case key.Matches(msg, m.keys.Restart):
		if m.game.Lost() {
			if err := m.game.Reset(); err == nil {
				m.scoreSaved = false
			}
		}

	case key.Matches(msg, m.keys.Left):
		m.game.Left(1)

	case key.Matches(msg, m.keys.Right):
		m.game.Right(1)

	case key.Matches(msg, m.keys.SoftDrop):
		m.game.SoftDrop(1)

	case key.Matches(msg, m.keys.HardDrop):
		m.game.HardDrop()

	case key.Matches(msg, m.keys.RotateCW):
		m.game.Rotate(1)

	case key.Matches(msg, m.keys.RotateCCW):
		m.game.Rotate(-1)

	case key.Matches(msg, m.keys.Rotate180):
		m.game.Rotate(2)

	case key.Matches(msg, m.keys.Hold):
		m.game.Swap()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return fmt.Sprintf("final score: %d\n", m.game.Score())
	}
	return RenderGame(m.game.Snapshot(), m.help.View(m.keys))
}

// Run starts the local terminal session and blocks until it ends.
func Run(g *game.Game, store *storage.Store, preset string, fps int) error {
	p := tea.NewProgram(NewModel(g, store, preset, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
