package tui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/games/huematch"
	"github.com/vovakirdan/huematch/internal/puzzle"
)

// HistorySource is a read-only view of finished rounds.
// *puzzle.HistoryLedger implements it.
type HistorySource interface {
	LevelsPlayed() int
	Page(start, size int) iter.Seq2[int, puzzle.LevelHistoryEntry]
	Get(index int) (puzzle.LevelHistoryEntry, error)
}

// HistoryKeyMap defines the key bindings of the history review.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Select, k.Back}
}

func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("left/h", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("right/l", "next page"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show round"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel pages through the rounds of a game and redraws any of them.
type HistoryModel struct {
	source   HistorySource
	pageSize int
	pager    paginator.Model
	table    table.Model
	rows     []int // ledger index of each table row
	help     help.Model
	keys     HistoryKeyMap
	renderer *ScreenRenderer
	screen   *core.Screen
	width    int
	height   int

	detail      bool
	detailIndex int

	done     bool
	quitting bool
}

// NewHistoryModel creates a history review over source.
func NewHistoryModel(source HistorySource, pageSize, width, height int, renderer *ScreenRenderer) HistoryModel {
	if pageSize <= 0 {
		pageSize = puzzle.DefaultPageSize
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize
	p.SetTotalPages(source.LevelsPlayed())

	m := HistoryModel{
		source:   source,
		pageSize: pageSize,
		pager:    p,
		help:     help.New(),
		keys:     DefaultHistoryKeyMap(),
		renderer: renderer,
		screen:   core.NewScreen(max(width, 1), max(height, 1)),
		width:    width,
		height:   height,
	}
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Level", Width: 6},
			{Title: "Result", Width: 8},
			{Title: "Target", Width: 9},
			{Title: "Tiles", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(pageSize+1),
	)
	m.loadPage()
	return m
}

// loadPage fills the table with the current page.
func (m *HistoryModel) loadPage() {
	start := m.pager.Page * m.pageSize
	m.rows = nil
	var rows []table.Row
	for i, entry := range m.source.Page(start, m.pageSize) {
		m.rows = append(m.rows, i)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			resultLabel(entry.Scored),
			targetHex(entry),
			fmt.Sprintf("%d", len(entry.Tiles)),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultLabel(scored bool) string {
	if scored {
		return "✓ match"
	}
	return "✗ miss"
}

func targetHex(e puzzle.LevelHistoryEntry) string {
	if e.CorrectIndex < 0 || e.CorrectIndex >= len(e.Tiles) {
		return "-"
	}
	return e.Tiles[e.CorrectIndex].Color.Hex()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history review.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.detail {
				m.detail = false
			} else {
				m.done = true
			}
			return m, nil
		}
		if m.detail {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Next):
			if !m.pager.OnLastPage() {
				m.pager.NextPage()
				m.loadPage()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if m.pager.Page > 0 {
				m.pager.PrevPage()
				m.loadPage()
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.rows) {
				m.detail = true
				m.detailIndex = m.rows[c]
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(max(msg.Width, 1), max(msg.Height, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list or the selected round.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if m.detail {
		return m.detailView()
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", m.width)))
	b.WriteString("\n\n")

	if m.source.LevelsPlayed() == 0 {
		b.WriteString(centerText("No rounds played.", m.width))
		b.WriteString("\n\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(" Page %s\n", m.pager.View()))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) detailView() string {
	entry, err := m.source.Get(m.detailIndex)
	if err != nil {
		return fmt.Sprintf("Cannot show round %d: %v", m.detailIndex+1, err)
	}

	m.screen.Clear()
	huematch.RenderEntry(m.screen, entry, huematch.NewViewport(m.screen.Width(), m.screen.Height()))
	header := fmt.Sprintf(" Round %d  %s  target %s  (★ answer, + click)",
		m.detailIndex+1, resultLabel(entry.Scored), targetHex(entry))
	m.screen.DrawText(0, 0, header)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')
	m.screen.DrawText(0, m.screen.Height()-1, " esc/b back to list  q quit")
	return m.renderer.Render(m.screen)
}

// Page returns the current page index.
func (m HistoryModel) Page() int {
	return m.pager.Page
}

// TotalPages returns the number of pages.
func (m HistoryModel) TotalPages() int {
	return m.pager.TotalPages
}

// Rows returns the ledger indices shown on the current page.
func (m HistoryModel) Rows() []int {
	return append([]int(nil), m.rows...)
}

// Done reports whether the user left the review.
func (m HistoryModel) Done() bool {
	return m.done
}

// IsQuitting reports whether the user asked to quit the program.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// InDetail reports whether a single round is shown.
func (m HistoryModel) InDetail() bool {
	return m.detail
}
