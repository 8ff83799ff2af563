package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reversi/game"
	"reversi/searcher"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	humanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// searchDoneMsg carries the machine's reply out of the background search.
type searchDoneMsg struct {
	board  game.Board
	metric searcher.SearchMetric
	passed bool
}

// startMsg triggers the opening turn check: the starting position may already
// leave the human without a legal move.
type startMsg struct{}

// Model is the interactive game: the human plays X, the machine replies via
// MCTS run inside a tea.Cmd so the UI stays responsive. board is always
// normalized for the side to move.
type Model struct {
	board     game.Board
	humanTurn bool
	thinking  bool
	over      bool
	passes    int
	input     string
	status    string
	metric    searcher.SearchMetric
	searched  bool
	mcts      *searcher.MCTS
}

// New builds the game model on b, normalized for the human.
func New(b game.Board, mcts *searcher.MCTS) Model {
	return Model{
		board:     b,
		humanTurn: true,
		status:    "Your move (e.g. d3). q quits.",
		mcts:      mcts,
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if m.over || m.thinking || !m.humanTurn {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.playInput()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 && len(m.input) < 2 {
				m.input += msg.String()
			}
		}
		return m, nil

	case startMsg:
		return m.checkHumanTurn()

	case searchDoneMsg:
		m.thinking = false
		m.board = msg.board
		m.metric = msg.metric
		m.searched = !msg.metric.ShortCircuited
		m.humanTurn = true
		if msg.passed {
			m.passes++
			m.status = "Opponent passes. Your move."
		} else {
			m.passes = 0
			m.status = "Your move."
		}
		return m.checkHumanTurn()
	}

	return m, nil
}

// playInput applies the typed square, re-prompting on bad or illegal input.
func (m Model) playInput() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input)
	m.input = ""

	x, y, err := game.ParseSquare(input)
	if err != nil {
		m.status = fmt.Sprintf("Bad square %q, try again.", input)
		return m, nil
	}
	next := m.board
	if !next.Place(x, y) {
		m.status = fmt.Sprintf("Illegal move %s, try again.", input)
		return m, nil
	}

	m.board = next.Swapped()
	m.humanTurn = false
	m.passes = 0
	return m.startSearch()
}

// checkHumanTurn ends the game or auto-passes when the human cannot move.
func (m Model) checkHumanTurn() (tea.Model, tea.Cmd) {
	if m.passes >= 2 || m.board.IsFull() {
		return m.finish(), nil
	}
	if len(m.board.Successors()) == 0 {
		m.passes++
		if m.passes >= 2 {
			return m.finish(), nil
		}
		m.status = "No legal move, you pass."
		m.board = m.board.Swapped()
		m.humanTurn = false
		return m.startSearch()
	}
	return m, nil
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if m.board.IsFull() {
		return m.finish(), nil
	}
	m.thinking = true
	m.status = "Thinking..."
	board := m.board
	mcts := m.mcts
	return m, func() tea.Msg {
		next, metric := mcts.FindNextBoard(board)
		return searchDoneMsg{
			board:  next,
			metric: metric,
			passed: next == board.Swapped(),
		}
	}
}

func (m Model) finish() Model {
	m.over = true
	view := m.view()
	x := view.Count(game.Black)
	o := view.Count(game.White)
	switch {
	case x > o:
		m.status = fmt.Sprintf("Game over. You win %d-%d! q quits.", x, o)
	case o > x:
		m.status = fmt.Sprintf("Game over. Machine wins %d-%d. q quits.", o, x)
	default:
		m.status = fmt.Sprintf("Game over. Draw %d-%d. q quits.", x, o)
	}
	return m
}

// view returns the board in the human's perspective: Black marks the human.
func (m Model) view() game.Board {
	if m.humanTurn {
		return m.board
	}
	return m.board.Swapped()
}

func (m Model) View() string {
	view := m.view()

	var grid strings.Builder
	grid.WriteString(labelStyle.Render("  a b c d e f g h"))
	grid.WriteByte('\n')
	for y := 0; y < game.BoardSize; y++ {
		grid.WriteString(labelStyle.Render(fmt.Sprintf("%d ", y+1)))
		for x := 0; x < game.BoardSize; x++ {
			switch view.At(x, y) {
			case game.Black:
				grid.WriteString(humanStyle.Render("X"))
			case game.White:
				grid.WriteString(agentStyle.Render("O"))
			default:
				grid.WriteString(emptyStyle.Render("."))
			}
			grid.WriteByte(' ')
		}
		grid.WriteByte('\n')
	}

	counts := fmt.Sprintf("You (X): %d   Machine (O): %d",
		view.Count(game.Black), view.Count(game.White))
	if m.searched {
		counts += fmt.Sprintf("   last search: %d playouts in %s",
			m.metric.Episodes, m.metric.Duration.Round(time.Millisecond))
	}

	s := boardStyle.Render(grid.String()) + "\n"
	s += statusStyle.Render(counts) + "\n"
	s += statusStyle.Render(m.status) + "\n"
	if !m.over && m.humanTurn && !m.thinking {
		s += fmt.Sprintf("> %s", m.input)
	}
	return s
}
