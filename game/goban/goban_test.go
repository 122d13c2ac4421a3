package goban

import (
	"fmt"
	"strings"
	"testing"

	"github.com/senseis/ranka/game"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert := assert.New(t)
	b := New(3)

	// 3x3 board: 9 playable cells inside 12 cells of Border padding
	B, E := game.Border, game.Empty
	want := []game.Colour{
		B, B, B, B,
		B, E, E, E,
		B, E, E, E,
		B, E, E, E,
		B, B, B, B, B,
	}
	assert.Equal(want, b.Points())
	assert.Equal(21, len(b.Points()))

	assert.Equal(game.Point(5), b.RowStart(1))
	assert.Equal(game.Point(5), b.Pt(1, 1))
	assert.Equal(game.Point(15), b.Pt(3, 3))
	assert.Panics(func() { b.RowStart(0) })
	assert.Panics(func() { b.RowStart(4) })

	empties := b.GetEmptyPoints()
	assert.Len(empties, 9)
	assert.Equal(game.Point(5), empties[0])

	assert.Panics(func() { New(1) })
	assert.Panics(func() { New(game.MaxSize + 1) })
}

func TestPlayMove(t *testing.T) {
	assert := assert.New(t)
	b := New(3)
	p := b.Pt(2, 2)

	assert.Equal(game.Black, b.CurrentPlayer())
	assert.NoError(b.PlayMove(p, game.Black))
	assert.Equal(game.Black, b.GetColour(p))
	assert.Equal(game.White, b.CurrentPlayer())
	assert.Equal(p, b.LastMove())

	// occupied point
	err := b.PlayMove(p, game.White)
	assert.Error(err)
	assert.Contains(err.Error(), "not empty")
	assert.Equal(game.Black, b.GetColour(p))

	// pass only flips the player
	before := b.Clone()
	assert.NoError(b.PlayMove(game.Pass, game.White))
	assert.Equal(game.Black, b.CurrentPlayer())
	assert.Equal(before.Points(), b.Points())

	// off board and non-player colours
	assert.Error(b.PlayMove(game.Point(1000), game.Black))
	assert.Error(b.PlayMove(game.Point(0), game.Black)) // a Border cell
	assert.Error(b.PlayMove(b.Pt(1, 1), game.Empty))
	assert.Error(b.PlayMove(b.Pt(1, 1), game.Border))
}

func TestIsLegal(t *testing.T) {
	assert := assert.New(t)
	b := New(3)
	p := b.Pt(1, 1)

	snapshot := b.Clone()
	assert.True(b.IsLegal(p, game.Black))
	assert.True(b.Eq(snapshot)) // the check must not mutate the board

	assert.NoError(b.PlayMove(p, game.Black))
	assert.False(b.IsLegal(p, game.White))
	assert.False(b.IsLegal(game.Point(0), game.White))
}

func TestIsEye(t *testing.T) {
	assert := assert.New(t)
	b := New(5)

	// corner eye: A1 surrounded by black at A2 and B1
	assert.NoError(b.PlayMove(b.Pt(1, 2), game.Black))
	assert.NoError(b.PlayMove(b.Pt(4, 4), game.White)) // elsewhere
	assert.NoError(b.PlayMove(b.Pt(2, 1), game.Black))
	assert.True(b.IsEye(b.Pt(1, 1), game.Black))
	assert.False(b.IsEye(b.Pt(1, 1), game.White))

	// an opponent stone on the lone inner diagonal makes it a false eye
	assert.NoError(b.PlayMove(b.Pt(2, 2), game.White))
	assert.False(b.IsEye(b.Pt(1, 1), game.Black))

	// centre eye tolerates one diagonal opponent stone but not two
	c := New(5)
	for _, pt := range [][2]int{{2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		assert.NoError(c.PlayMove(c.Pt(pt[0], pt[1]), game.Black))
		assert.NoError(c.PlayMove(game.Pass, game.White))
	}
	assert.True(c.IsEye(c.Pt(3, 3), game.Black))
	assert.NoError(c.PlayMove(game.Pass, game.Black))
	assert.NoError(c.PlayMove(c.Pt(2, 2), game.White))
	assert.True(c.IsEye(c.Pt(3, 3), game.Black))
	assert.NoError(c.PlayMove(game.Pass, game.Black))
	assert.NoError(c.PlayMove(c.Pt(4, 4), game.White))
	assert.False(c.IsEye(c.Pt(3, 3), game.Black))

	// a non-surrounded point is never an eye
	assert.False(c.IsEye(c.Pt(5, 5), game.Black))
}

func TestScore(t *testing.T) {
	assert := assert.New(t)
	b := New(3)
	assert.Equal(float32(0), b.Score(game.Black))
	assert.Equal(float32(0), b.Score(game.White))

	assert.NoError(b.PlayMove(b.Pt(2, 2), game.Black))
	assert.Equal(float32(9), b.Score(game.Black))
	assert.Equal(float32(0), b.Score(game.White))

	assert.NoError(b.PlayMove(b.Pt(1, 1), game.White))
	assert.Equal(float32(8), b.Score(game.Black))
	assert.Equal(float32(8), b.Score(game.White))
}

func TestCloneEqReset(t *testing.T) {
	assert := assert.New(t)
	b := New(5)
	assert.NoError(b.PlayMove(b.Pt(3, 3), game.Black))

	c := b.Clone()
	assert.True(b.Eq(c))
	assert.Equal(b.Hash(), c.Hash())

	// the clone is independent
	assert.NoError(c.PlayMove(c.Pt(1, 1), game.White))
	assert.False(b.Eq(c))
	assert.Equal(game.Empty, b.GetColour(b.Pt(1, 1)))

	// independently built boards with the same position are equal
	d := New(5)
	assert.NoError(d.PlayMove(d.Pt(3, 3), game.Black))
	assert.True(b.Eq(d))

	b.Reset(5)
	assert.True(b.Eq(New(5)))
	assert.Equal(game.Black, b.CurrentPlayer())
	assert.True(b.LastMove().IsPass())
}

func TestCloneZobrist(t *testing.T) {
	assert := assert.New(t)
	b := New(5)
	assert.NoError(b.PlayMove(b.Pt(3, 3), game.Black))

	// the clone carries the same table, so identical continuations hash
	// identically on both boards
	c := b.Clone()
	assert.NoError(b.PlayMove(b.Pt(1, 1), game.White))
	assert.NoError(c.PlayMove(c.Pt(1, 1), game.White))
	assert.Equal(b.Hash(), c.Hash())

	// and diverging continuations don't
	d := b.Clone()
	assert.NoError(b.PlayMove(b.Pt(2, 2), game.Black))
	assert.NoError(d.PlayMove(d.Pt(4, 4), game.Black))
	assert.NotEqual(b.Hash(), d.Hash())
}

func BenchmarkIsLegal(b *testing.B) {
	board := New(19)
	p := board.Pt(10, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.IsLegal(p, game.Black)
	}
}

func TestHash(t *testing.T) {
	assert := assert.New(t)
	b := New(3)
	h0 := b.Hash()
	assert.NoError(b.PlayMove(b.Pt(1, 2), game.Black))
	assert.NotEqual(h0, b.Hash())

	// pass does not change the position hash
	h1 := b.Hash()
	assert.NoError(b.PlayMove(game.Pass, game.White))
	assert.Equal(h1, b.Hash())
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)
	b := New(3)
	assert.NoError(b.PlayMove(b.Pt(1, 1), game.Black))
	assert.NoError(b.PlayMove(b.Pt(3, 3), game.White))

	s := fmt.Sprintf("%s", b)
	t.Logf("\n%v", s)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	assert.Len(lines, 3)
	assert.Contains(lines[0], "O") // the highest row prints first
	assert.Contains(lines[2], "X")
}
