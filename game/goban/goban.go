// Package goban implements the padded one-dimensional Go board that the
// move generators in package game operate on.
//
// The board is a flat array of game.Colour with a one-cell Border ring
// around the playable area; see game.CoordToPoint for the exact layout. The
// padding lets neighbour lookups use the four fixed offsets {+1, -1, +NS,
// -NS} with no bounds checks, at the cost of a little extra memory. Keep it
// that way: downstream neighbour code depends on the Border absorbing
// out-of-range reads.
package goban

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
)

// Board represents a board.
//
// Rather than a 2-D structure, the backing data is a single flat slice plus
// an iterator of per-row views for quick access. The stride between
// vertically adjacent points (NS, for north-south) is size+1.
type Board struct {
	size    int32
	ns      int32 // north-south stride: one padded row
	data    []game.Colour
	it      [][]game.Colour // per-row views into data
	current game.Colour
	zobrist // hashing of the board

	lastMove  game.Point
	last2Move game.Point
}

var _ game.Board = &Board{}

// New creates a board of the given side length. Sizes outside
// [2, game.MaxSize] are a programming error.
func New(size int) *Board {
	b := new(Board)
	b.Reset(size)
	return b
}

// Reset recreates the start state: an empty board of the given size with
// Black to move.
func (b *Board) Reset(size int) {
	if size < 2 || size > game.MaxSize {
		panic(fmt.Sprintf("board size %d out of range [2, %d]", size, game.MaxSize))
	}
	data, it := makeBoard(size)
	b.size = int32(size)
	b.ns = int32(size + 1)
	b.data = data
	b.it = it
	b.current = game.Black
	b.lastMove = game.Pass
	b.last2Move = game.Pass
	b.zobrist = makeZobrist(maxPoint(size))
}

// Clone clones the board. The zobrist table is copied rather than reseeded:
// IsLegal clones per query and the players clone per playout, so the clone
// path must not draw fresh randomness.
func (b *Board) Clone() *Board {
	data, it := makeBoard(int(b.size))
	copy(data, b.data)
	ztable, zit := makeZobristTable(len(b.data))
	copy(ztable, b.table)
	z := zobrist{table: ztable, it: zit, hash: b.hash}
	return &Board{
		size:      b.size,
		ns:        b.ns,
		data:      data,
		it:        it,
		current:   b.current,
		zobrist:   z,
		lastMove:  b.lastMove,
		last2Move: b.last2Move,
	}
}

// Eq checks that both boards hold the same position with the same player to
// move. The zobrist tables are rng-seeded per board and deliberately not
// compared, so boards of independent construction can still be equal.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b.size != other.size || b.current != other.current {
		return false
	}
	for i, c := range b.data {
		if c != other.data[i] {
			return false
		}
	}
	return true
}

// Size returns the side length of the playable area.
func (b *Board) Size() int { return int(b.size) }

// Points returns the flat padded board array. The board retains ownership;
// callers must not mutate it.
func (b *Board) Points() []game.Colour { return b.data }

// Hash returns the calculated zobrist hash of the board
func (b *Board) Hash() int32 { return b.hash }

// CurrentPlayer returns the colour to move.
func (b *Board) CurrentPlayer() game.Colour { return b.current }

// SetCurrentPlayer sets the colour to move.
func (b *Board) SetCurrentPlayer(c game.Colour) { b.current = c }

// LastMove returns the last move played, Pass if none.
func (b *Board) LastMove() game.Point { return b.lastMove }

// LastBoardMoves returns the last and second-last moves that were real
// points on the board.
func (b *Board) LastBoardMoves() []game.Point {
	var moves []game.Point
	if !b.lastMove.IsPass() {
		moves = append(moves, b.lastMove)
	}
	if !b.last2Move.IsPass() {
		moves = append(moves, b.last2Move)
	}
	return moves
}

// RowStart returns the first playable point of a row in [1, size].
func (b *Board) RowStart(row int) game.Point {
	if row < 1 || int32(row) > b.size {
		panic(fmt.Sprintf("row %d out of range for board size %d", row, b.size))
	}
	return game.Point(int32(row)*b.ns + 1)
}

// Pt maps (row, col) to a point on this board.
func (b *Board) Pt(row, col int) game.Point { return game.CoordToPoint(row, col, int(b.size)) }

// GetColour returns the colour on the given point.
func (b *Board) GetColour(p game.Point) game.Colour { return b.data[p] }

// GetEmptyPoints returns the empty points on the board.
func (b *Board) GetEmptyPoints() []game.Point {
	empties := make([]game.Point, 0, b.size*b.size)
	for p, c := range b.data {
		if c == game.Empty {
			empties = append(empties, game.Point(p))
		}
	}
	return empties
}

// PlayMove plays a move of the colour on the point. Pass is always
// accepted and only flips the player to move. There is no ko, suicide or
// capture handling on this board; a move is playable iff the point is
// empty.
func (b *Board) PlayMove(p game.Point, c game.Colour) error {
	if !game.IsBlackWhite(c) {
		return errors.WithMessage(moveError{p, c}, "not a player colour")
	}
	if p.IsPass() {
		b.last2Move, b.lastMove = b.lastMove, p
		b.current = game.Opponent(c)
		return nil
	}
	if p < 0 || int(p) >= len(b.data) {
		return errors.WithMessage(moveError{p, c}, "point off board")
	}
	if b.data[p] != game.Empty {
		return errors.WithMessage(moveError{p, c}, "point not empty")
	}
	b.data[p] = c
	b.zobrist.update(p, c)
	b.last2Move, b.lastMove = b.lastMove, p
	b.current = game.Opponent(c)
	return nil
}

// IsLegal checks whether it is legal for the colour to play on the point by
// trying the move on a temporary clone, so the board is never modified by
// the check.
func (b *Board) IsLegal(p game.Point, c game.Colour) bool {
	clone := b.Clone()
	return clone.PlayMove(p, c) == nil
}

// IsEye checks if the point is a simple eye for the colour: surrounded by
// own stones (or Border), with at most one diagonal opponent stone in the
// centre and none at the edge, to rule out false eyes.
func (b *Board) IsEye(p game.Point, c game.Colour) bool {
	if !b.isSurrounded(p, c) {
		return false
	}
	opp := game.Opponent(c)
	falseCount := 0
	atEdge := 0
	for _, d := range b.diagNeighbours(p) {
		switch b.data[d] {
		case game.Border:
			atEdge = 1
		case opp:
			falseCount++
		}
	}
	return falseCount <= 1-atEdge
}

// isSurrounded checks whether the empty point has only stones of the colour
// (or Border) as neighbours.
func (b *Board) isSurrounded(p game.Point, c game.Colour) bool {
	for _, nb := range b.neighbours(p) {
		if nc := b.data[nb]; nc != game.Border && nc != c {
			return false
		}
	}
	return true
}

// Score returns the reach count for a colour: its stones plus the empty
// points reachable from them. Empty means a point shared by both reach sets
// counts for both, which is fine for the relative comparison the players
// make.
func (b *Board) Score(c game.Colour) float32 {
	seen := make([]bool, len(b.data))
	stack := make([]game.Point, 0, b.size*b.size)

	var reachable float32
	for i := range b.data {
		if b.data[i] == c {
			reachable++
			seen[i] = true
			stack = append(stack, game.Point(i))
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range b.neighbours(p) {
			if !seen[a] && b.data[a] == game.Empty {
				reachable++
				seen[a] = true
				stack = append(stack, a)
			}
		}
	}
	return reachable
}

// neighbours returns the four adjacent points. Only call with playable
// points: the Border ring guarantees the results are in range.
func (b *Board) neighbours(p game.Point) [4]game.Point {
	ns := game.Point(b.ns)
	return [4]game.Point{p - 1, p + 1, p - ns, p + ns}
}

// diagNeighbours returns the four diagonally adjacent points.
func (b *Board) diagNeighbours(p game.Point) [4]game.Point {
	ns := game.Point(b.ns)
	return [4]game.Point{p - ns - 1, p - ns + 1, p + ns - 1, p + ns + 1}
}

// Format implements fmt.Formatter. Rows print top down, so the highest row
// comes first, the way a goban is read.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		for row := len(b.it) - 1; row >= 0; row-- {
			fmt.Fprint(s, "⎢ ")
			for _, col := range b.it[row] {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}
