package searcher

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

func TestNewMCTS(t *testing.T) {
	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS() },
			"A searcher needs a duration or episode budget")
	})

	t.Run("accepts either budget form", func(t *testing.T) {
		require.NotPanics(t, func() { NewMCTS(WithDuration(time.Millisecond)) })
		require.NotPanics(t, func() { NewMCTS(WithEpisodes(1)) })
	})
}

func TestFindNextBoard(t *testing.T) {
	t.Run("forced pass returns the perspective swap without searching", func(t *testing.T) {
		b := game.MustParse("X" + strings.Repeat(".", 63))
		m := NewMCTS(WithEpisodes(10), WithMetrics())

		got, metric := m.FindNextBoard(b)

		require.Equal(t, b.Swapped(), got)
		require.True(t, metric.ShortCircuited)
		require.Zero(t, metric.Episodes, "No tree is built for a forced pass")
	})

	t.Run("single legal move is returned without searching", func(t *testing.T) {
		b := game.MustParse("XO......" + strings.Repeat(".", 56))
		m := NewMCTS(WithEpisodes(10), WithMetrics())

		got, metric := m.FindNextBoard(b)

		require.Equal(t, b.Successors()[0], got)
		require.True(t, metric.ShortCircuited)
	})

	t.Run("episode budget drives exactly that many iterations", func(t *testing.T) {
		m := NewMCTS(WithEpisodes(50), WithRand(NewRand(1)), WithMetrics())

		_, metric := m.FindNextBoard(game.New())

		require.Equal(t, 50, metric.Episodes,
			"Root visits must equal the number of search iterations")
		require.False(t, metric.ShortCircuited)
		require.GreaterOrEqual(t, metric.ExpectedOccupation, 0.0)
		require.LessOrEqual(t, metric.ExpectedOccupation, 1.0)
	})

	t.Run("search returns a legal successor of the input", func(t *testing.T) {
		b := game.New()
		m := NewMCTS(WithEpisodes(100), WithRand(NewRand(7)))

		got, _ := m.FindNextBoard(b)

		require.Contains(t, b.Successors(), got,
			"The chosen board must be one of the input's legal successors")
	})

	t.Run("wall-clock budget also returns a legal successor", func(t *testing.T) {
		b := game.New()
		m := NewMCTS(WithDuration(20 * time.Millisecond))

		start := time.Now()
		got, _ := m.FindNextBoard(b)

		require.Contains(t, b.Successors(), got)
		require.Less(t, time.Since(start), 5*time.Second,
			"The budget check must terminate the loop promptly")
	})

	t.Run("fresh trees give stable decisions under a fixed seed", func(t *testing.T) {
		b := game.New()
		first, _ := NewMCTS(WithEpisodes(200), WithRand(NewRand(3))).FindNextBoard(b)
		second, _ := NewMCTS(WithEpisodes(200), WithRand(NewRand(3))).FindNextBoard(b)

		require.Equal(t, first, second,
			"Episode mode with a fixed seed is reproducible")
	})
}
