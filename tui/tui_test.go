package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"reversi/game"
	"reversi/searcher"
)

func newTestModel(b game.Board) Model {
	return New(b, searcher.NewMCTS(searcher.WithEpisodes(5), searcher.WithRand(searcher.NewRand(1))))
}

func pressEnter(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input = input
	next, cmd := m.playInput()
	return next.(Model), cmd
}

func TestPlayInput(t *testing.T) {
	t.Run("bad square re-prompts without moving", func(t *testing.T) {
		m := newTestModel(game.New())

		got, cmd := pressEnter(t, m, "z9")

		require.Nil(t, cmd)
		require.Equal(t, game.New(), got.board)
		require.True(t, got.humanTurn)
		require.Contains(t, got.status, "Bad square")
	})

	t.Run("illegal move re-prompts without moving", func(t *testing.T) {
		m := newTestModel(game.New())

		got, cmd := pressEnter(t, m, "a1")

		require.Nil(t, cmd)
		require.Equal(t, game.New(), got.board)
		require.Contains(t, got.status, "Illegal move")
	})

	t.Run("legal move hands the turn to the machine", func(t *testing.T) {
		m := newTestModel(game.New())

		got, cmd := pressEnter(t, m, "d3")

		require.NotNil(t, cmd, "A search command should be issued")
		require.True(t, got.thinking)
		require.False(t, got.humanTurn)
		want := game.New()
		require.True(t, want.Place(3, 2))
		require.Equal(t, want.Swapped(), got.board)
	})
}

func TestSearchDone(t *testing.T) {
	t.Run("machine pass counts toward game over", func(t *testing.T) {
		dead := game.MustParse("X" + strings.Repeat(".", 63))
		m := newTestModel(dead)
		m.humanTurn = false
		m.thinking = true
		m.passes = 1 // the human already passed

		next, _ := m.Update(searchDoneMsg{board: dead.Swapped(), passed: true})
		got := next.(Model)

		require.True(t, got.over, "Two passes in a row end the game")
		require.Contains(t, got.status, "Game over")
	})

	t.Run("human with no move auto-passes back to the machine", func(t *testing.T) {
		// After the machine's reply the human is blocked but the game is not
		// over yet.
		dead := game.MustParse("X" + strings.Repeat(".", 63))
		m := newTestModel(dead)
		m.humanTurn = false
		m.thinking = true

		next, cmd := m.Update(searchDoneMsg{board: dead, passed: false})
		got := next.(Model)

		require.NotNil(t, cmd, "The machine searches again after the human's auto-pass")
		require.True(t, got.thinking)
		require.Equal(t, 1, got.passes)
	})
}

func TestInit(t *testing.T) {
	t.Run("normal start waits for the human", func(t *testing.T) {
		m := newTestModel(game.New())

		start := m.Init()
		require.NotNil(t, start)
		next, cmd := m.Update(start())
		got := next.(Model)

		require.Nil(t, cmd)
		require.True(t, got.humanTurn)
		require.False(t, got.thinking)
		require.Equal(t, game.New(), got.board)
	})

	t.Run("human blocked at start auto-passes to the machine", func(t *testing.T) {
		// The human has no legal move from this position but the machine does.
		b := game.MustParse("OX" + strings.Repeat(".", 62))
		require.Empty(t, b.Successors())
		m := newTestModel(b)

		next, cmd := m.Update(m.Init()())
		got := next.(Model)

		require.NotNil(t, cmd, "The machine should search immediately")
		require.True(t, got.thinking)
		require.False(t, got.humanTurn)
		require.Equal(t, 1, got.passes)
		require.Equal(t, b.Swapped(), got.board)
	})
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(game.New())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
}
