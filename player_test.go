package ranka

import (
	"math/rand"
	"testing"

	"github.com/senseis/ranka/game"
	"github.com/senseis/ranka/game/goban"
	"github.com/stretchr/testify/assert"
)

func fullBoard(size int) *goban.Board {
	b := goban.New(size)
	c := game.Black
	for _, p := range b.GetEmptyPoints() {
		if err := b.PlayMove(p, c); err != nil {
			panic(err)
		}
		c = game.Opponent(c)
	}
	return b
}

func TestRandomPlayer(t *testing.T) {
	assert := assert.New(t)

	// deterministic under a fixed seed
	a := NewRandomPlayer(rand.New(rand.NewSource(1337))).GenMove(goban.New(5), game.Black)
	b := NewRandomPlayer(rand.New(rand.NewSource(1337))).GenMove(goban.New(5), game.Black)
	assert.Equal(a, b)

	// moves land on empty points
	board := goban.New(5)
	p := NewRandomPlayer(rand.New(rand.NewSource(42)))
	c := game.Black
	for i := 0; i < 10; i++ {
		mv := p.GenMove(board, c)
		assert.False(mv.IsPass())
		assert.NoError(board.PlayMove(mv, c))
		c = game.Opponent(c)
	}

	// passes when nothing is left
	assert.True(p.GenMove(fullBoard(3), game.Black).IsPass())
}

func TestRandomPlayerEyeFilter(t *testing.T) {
	assert := assert.New(t)

	// black owns the corner eye at (1,1); with the filter on it is never picked
	b := goban.New(3)
	assert.NoError(b.PlayMove(b.Pt(1, 2), game.Black))
	assert.NoError(b.PlayMove(b.Pt(3, 3), game.White))
	assert.NoError(b.PlayMove(b.Pt(2, 1), game.Black))
	assert.NoError(b.PlayMove(b.Pt(3, 2), game.White))
	assert.NoError(b.PlayMove(b.Pt(2, 2), game.Black))

	eye := b.Pt(1, 1)
	p := NewRandomPlayer(rand.New(rand.NewSource(1)))
	p.UseEyeFilter = true
	for i := 0; i < 50; i++ {
		assert.NotEqual(eye, p.GenMove(b, game.Black))
	}
}

func TestFlatMCPlayer(t *testing.T) {
	assert := assert.New(t)

	b := goban.New(3)
	p := NewFlatMCPlayer(50, 6.5, rand.New(rand.NewSource(42)))
	mv := p.GenMove(b, game.Black)
	assert.False(mv.IsPass())
	assert.Equal(game.Empty, b.GetColour(mv), "the search must not leave stones on the board")

	// deterministic under a fixed seed
	q := NewFlatMCPlayer(50, 6.5, rand.New(rand.NewSource(42)))
	assert.Equal(mv, q.GenMove(goban.New(3), game.Black))

	// passes when only own eyes remain
	assert.True(p.GenMove(fullBoard(3), game.White).IsPass())

	// constructor defaults
	d := NewFlatMCPlayer(0, 0, nil)
	assert.Equal(200, d.Playouts)
	assert.Equal(float32(0.4), d.C)
}
