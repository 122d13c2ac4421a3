package ranka

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
	"github.com/senseis/ranka/game/goban"
)

// OutputEncoder encodes a game record as whatever.
//
// An example OutputEncoder is the gif.Encoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

type combatant struct {
	Player
	Colour game.Colour

	// key identifies the combatant in the match statistics. It is the
	// player's name unless both players share one.
	key string

	Wins, Loss, Draw float32
}

// Match plays repeated games between two players, each game on a fresh
// board with random colour assignment.
type Match struct {
	r *rand.Rand
	b *goban.Board

	A, B    *combatant
	current *combatant

	buf    bytes.Buffer
	logger *log.Logger

	name       string
	size       int
	komi       float32
	gameNumber int
	stats      Statistics

	ended  bool
	winner game.Colour
}

// NewMatch sets up a match between two players on boards of the given size.
func NewMatch(size int, a, b Player, komi float32, name string) *Match {
	if name == "" {
		name = "UNKNOWN GAME"
	}
	akey, bkey := a.Name(), b.Name()
	if akey == bkey {
		akey += "/A"
		bkey += "/B"
	}
	m := &Match{
		r:     rand.New(rand.NewSource(time.Now().UnixNano())),
		b:     goban.New(size),
		A:     &combatant{Player: a, key: akey},
		B:     &combatant{Player: b, key: bkey},
		name:  name,
		size:  size,
		komi:  komi,
		stats: makeStatistics(),
	}
	m.logger = log.New(&m.buf, "", log.Ltime)
	return m
}

// Play plays one game and returns the winner's colour; Empty means a draw.
// If enc is non-nil every position after a move is encoded into it.
func (m *Match) Play(enc OutputEncoder) (game.Colour, error) {
	m.b.Reset(m.size)
	m.ended = false
	m.winner = game.Empty
	m.gameNumber++

	if m.r.Intn(2) == 0 {
		m.A.Colour, m.B.Colour = game.Black, game.White
		m.current = m.A
	} else {
		m.A.Colour, m.B.Colour = game.White, game.Black
		m.current = m.B
	}
	m.logger.Printf("game %d: %s is %v, %s is %v", m.gameNumber, m.A.key, m.A.Colour, m.B.key, m.B.Colour)

	// two consecutive passes end the game; the move cap guards against
	// players that never pass
	var passes int
	limit := 2 * m.size * m.size
	for moves := 0; moves < limit && passes < 2; moves++ {
		move := m.current.GenMove(m.b, m.current.Colour)
		if move.IsPass() {
			passes++
		} else {
			passes = 0
		}
		if err := m.b.PlayMove(move, m.current.Colour); err != nil {
			return game.Empty, errors.WithMessage(err, "match aborted")
		}
		m.logger.Printf("%v plays %d", m.current.Colour, move)
		m.switchPlayer()

		if enc != nil {
			if err := enc.Encode(m); err != nil {
				return game.Empty, err
			}
		}
	}

	m.ended = true
	black := m.b.Score(game.Black)
	white := m.b.Score(game.White) + m.komi
	switch {
	case black > white:
		m.winner = game.Black
	case white > black:
		m.winner = game.White
	}
	m.logger.Printf("game %d: winner %v (B %.1f, W %.1f)", m.gameNumber, m.winner, black, white)
	m.record()
	return m.winner, nil
}

func (m *Match) record() {
	switch {
	case m.winner == game.Empty:
		m.A.Draw++
		m.B.Draw++
	case m.winner == m.A.Colour:
		m.A.Wins++
		m.B.Loss++
	default:
		m.B.Wins++
		m.A.Loss++
	}
	m.stats.update(m.A)
	m.stats.update(m.B)
}

func (m *Match) switchPlayer() {
	switch m.current {
	case m.A:
		m.current = m.B
	case m.B:
		m.current = m.A
	}
}

// Stats returns the running statistics of the match.
func (m *Match) Stats() *Statistics { return &m.stats }

// Log writes out the match log.
func (m *Match) Log(w io.Writer) { fmt.Fprint(w, m.buf.String()) }

// Name implements game.MetaState
func (m *Match) Name() string { return m.name }

// GameNumber implements game.MetaState
func (m *Match) GameNumber() int { return m.gameNumber }

// State implements game.MetaState
func (m *Match) State() game.Board { return m.b }

// Result implements game.MetaState
func (m *Match) Result() (bool, game.Colour) { return m.ended, m.winner }
