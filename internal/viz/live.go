package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/life1d/internal/life"
)

const (
	historyRows     = 16
	sparkWidth      = 40
	populationLimit = 600
)

type TickMsg time.Time

// Model animates a board, one generation per tick.
type Model struct {
	board       *life.Board
	seed        int64
	generation  int
	limit       int
	interval    time.Duration
	running     bool
	theme       Theme
	history     [][]life.Cell
	populations []float64
	err         error
}

// NewModel returns a live view of b. limit stops the animation after that
// many generations; 0 runs until quit.
func NewModel(b *life.Board, seed int64, limit, fps int, th Theme) Model {
	if fps <= 0 {
		fps = 8
	}
	m := Model{
		board:       b,
		seed:        seed,
		limit:       limit,
		interval:    time.Second / time.Duration(fps),
		running:     true,
		theme:       th,
		history:     make([][]life.Cell, 0, historyRows),
		populations: make([]float64, 0, populationLimit),
	}
	m.record()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the board.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reseed()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	if m.done() {
		m.running = false
		return
	}
	m.board.Advance()
	m.generation++
	m.record()
}

func (m *Model) reseed() {
	m.seed++
	b, err := life.NewBoard(m.board.Len(), life.NewRNG(m.seed))
	if err != nil {
		m.err = err
		return
	}
	m.board = b
	m.generation = 0
	m.history = m.history[:0]
	m.populations = m.populations[:0]
	m.running = true
	m.record()
}

func (m *Model) record() {
	if len(m.history) == historyRows {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, m.board.Cells())

	if len(m.populations) == populationLimit {
		m.populations = append(m.populations[:0], m.populations[1:]...)
	}
	m.populations = append(m.populations, float64(m.board.Population()))
}

func (m Model) done() bool {
	return m.limit > 0 && m.generation >= m.limit
}

// Generation returns the number of steps taken since the last seed.
func (m Model) Generation() int { return m.generation }

// Board returns the board being animated.
func (m Model) Board() *life.Board { return m.board }

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("life1d")

	status := "running"
	switch {
	case m.done():
		status = "done"
	case !m.running:
		status = "paused"
	}

	stats := strings.Join([]string{
		statLine("generation", fmt.Sprintf("%d", m.generation), m.theme),
		statLine("population", fmt.Sprintf("%d / %d", m.board.Population(), m.board.Len()), m.theme),
		statLine("seed", fmt.Sprintf("%d", m.seed), m.theme),
		statLine("theme", m.theme.Name, m.theme),
		statLine("status", status, m.theme),
	}, "\n")

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	sb.WriteString(panelStyle.Render(RenderHistory(m.history, m.theme)) + "\n")
	sb.WriteString(SparklineChart(m.populations, sparkWidth, m.theme) + "\n\n")
	sb.WriteString(stats + "\n")
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	sb.WriteString(helpStyle.Foreground(m.theme.Muted).Render("space pause · n step · r reseed · t theme · q quit"))
	return sb.String()
}
