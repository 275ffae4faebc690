package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/render"
)

type tickMsg struct{}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#606070"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#606070")).
			Padding(0, 1).
			Width(18)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(render.Hex(engine.Red)))
)

// model is the bubbletea wrapper around an engine.Game.
type model struct {
	game     *engine.Game
	term     *render.Terminal
	keys     keyMap
	help     help.Model
	interval time.Duration

	width, height int
}

func newModel(game *engine.Game, interval time.Duration) model {
	return model{
		game:     game,
		term:     render.NewTerminal(render.DefaultLayout()),
		keys:     defaultKeyMap(),
		help:     help.New(),
		interval: interval,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.game.Tick()
		return m, tickCmd(m.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.game.Restart()
			return m, nil
		case key.Matches(msg, m.keys.ShowHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		for _, gk := range m.keys.gameKeys() {
			if key.Matches(msg, gk.binding) {
				m.game.Input(gk.key)
				break
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	board := boardStyle.Render(m.term.Render(m.game.RenderBlocks()))

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(m.panel()))
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m model) panel() string {
	var b strings.Builder
	stats := m.game.Stats()

	b.WriteString(titleStyle.Render("Lines"))
	fmt.Fprintf(&b, "\n%d\n\n", stats.Lines)
	b.WriteString(titleStyle.Render("Pieces"))
	fmt.Fprintf(&b, "\n%d\n\n", stats.Pieces)

	b.WriteString(titleStyle.Render("Next"))
	b.WriteString("\n")
	for _, k := range m.game.Upcoming() {
		fmt.Fprintf(&b, "%s %s\n", m.term.Swatch(k), k)
	}

	if m.game.IsGameOver() {
		b.WriteString("\n")
		b.WriteString(gameOverStyle.Render("GAME OVER"))
		b.WriteString("\nr to restart")
	}
	return b.String()
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}
