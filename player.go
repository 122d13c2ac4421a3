// Package ranka provides players and match plumbing for Go (the board
// game), built on the goban board and the move generators in package game.
package ranka

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/senseis/ranka/game"
	"github.com/senseis/ranka/game/goban"
)

// Player is anything that can generate a move for a colour on a board.
type Player interface {
	Name() string
	Version() string
	GenMove(b *goban.Board, c game.Colour) game.Point
}

// RandomPlayer selects a move uniformly at random from the legal candidate
// moves and passes only when none exists. The eye filter is off by default:
// the plain random player happily fills its own eyes.
type RandomPlayer struct {
	r            *rand.Rand
	UseEyeFilter bool
}

// NewRandomPlayer creates a random player drawing from r. A nil r seeds a
// fresh generator from the clock.
func NewRandomPlayer(r *rand.Rand) *RandomPlayer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPlayer{r: r}
}

func (p *RandomPlayer) Name() string    { return "ranka-random" }
func (p *RandomPlayer) Version() string { return "1.0" }

func (p *RandomPlayer) GenMove(b *goban.Board, c game.Colour) game.Point {
	b.SetCurrentPlayer(c)
	moves := game.GenerateRandomMoves(b, p.UseEyeFilter)
	if len(moves) == 0 {
		return game.Pass
	}
	return moves[p.r.Intn(len(moves))]
}

// FlatMCPlayer is a flat Monte-Carlo player: it spreads a playout budget
// across the root candidates with a UCB rule, judges playouts by reach
// count plus komi, and plays the most visited candidate. No tree is kept
// between moves.
type FlatMCPlayer struct {
	r *rand.Rand

	Playouts int     // total playout budget per move
	C        float32 // exploration constant
	Komi     float32 // added to White's score when judging playouts
}

// NewFlatMCPlayer creates a flat Monte-Carlo player with the given playout
// budget. A nil r seeds a fresh generator from the clock.
func NewFlatMCPlayer(playouts int, komi float32, r *rand.Rand) *FlatMCPlayer {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if playouts <= 0 {
		playouts = 200
	}
	return &FlatMCPlayer{
		r:        r,
		Playouts: playouts,
		C:        0.4,
		Komi:     komi,
	}
}

func (p *FlatMCPlayer) Name() string    { return "ranka-flatmc" }
func (p *FlatMCPlayer) Version() string { return "1.0" }

func (p *FlatMCPlayer) GenMove(b *goban.Board, c game.Colour) game.Point {
	b.SetCurrentPlayer(c)
	candidates := game.GenerateRandomMoves(b, true)
	if len(candidates) == 0 {
		return game.Pass
	}

	wins := make([]float32, len(candidates))
	visits := make([]float32, len(candidates))
	var total float32
	for i := 0; i < p.Playouts; i++ {
		best := 0
		bestVal := math32.Inf(-1)
		for j := range candidates {
			if v := p.ucb(wins[j], visits[j], total); v > bestVal {
				bestVal = v
				best = j
			}
		}

		clone := b.Clone()
		clone.PlayMove(candidates[best], c)
		if p.playout(clone) == c {
			wins[best]++
		}
		visits[best]++
		total++
	}

	best := 0
	for j := range candidates {
		if visits[j] > visits[best] {
			best = j
		}
	}
	return candidates[best]
}

// ucb is the standard upper confidence bound. Unvisited candidates score
// +Inf so every candidate gets simulated at least once.
func (p *FlatMCPlayer) ucb(wins, visits, total float32) float32 {
	if visits == 0 {
		return math32.Inf(1)
	}
	return wins/visits + p.C*math32.Sqrt(math32.Log(total+1)/visits)
}

// playout plays uniformly random eye-safe moves to the end of the game and
// returns the winner, Empty for a draw.
func (p *FlatMCPlayer) playout(b *goban.Board) game.Colour {
	limit := 2 * b.Size() * b.Size()
	passes := 0
	for i := 0; i < limit && passes < 2; i++ {
		cur := b.CurrentPlayer()
		moves := game.GenerateRandomMoves(b, true)
		if len(moves) == 0 {
			b.PlayMove(game.Pass, cur)
			passes++
			continue
		}
		passes = 0
		b.PlayMove(moves[p.r.Intn(len(moves))], cur)
	}
	return p.winner(b)
}

func (p *FlatMCPlayer) winner(b *goban.Board) game.Colour {
	black := b.Score(game.Black)
	white := b.Score(game.White) + p.Komi
	switch {
	case black > white:
		return game.Black
	case white > black:
		return game.White
	}
	return game.Empty
}
