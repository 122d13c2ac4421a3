// Package game holds the datatypes shared by every Go (the board game)
// package in this repository: colours, points, the coordinate mapping onto
// the padded one-dimensional board, and the stateless move generators.
package game

import (
	"fmt"
)

// Colour is the content of a board cell. Exactly one of the four values
// below occupies any cell.
type Colour int32

const (
	Empty Colour = iota
	Black
	White
	Border // non-playable padding surrounding the grid
)

// MaxSize is the largest supported board side. Supporting larger boards
// would require changing the coordinate printing in package gtp.
const MaxSize = 25

// IsBlackWhite reports whether c is an actual player colour.
func IsBlackWhite(c Colour) bool { return c == Black || c == White }

// Opponent returns the colour of the opponent player. The Black+White sum
// only makes sense for player colours; anything else is a caller bug.
func Opponent(c Colour) Colour {
	if !IsBlackWhite(c) {
		panic(fmt.Sprintf("no opponent for %v", c))
	}
	return Black + White - c
}

// Format implements fmt.Formatter
func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case Empty:
			fmt.Fprint(s, "Empty")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		case Border:
			fmt.Fprint(s, "Border")
		}
	case 's': // used in board printouts
		switch cl {
		case Empty:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		case Border:
			fmt.Fprint(s, "#")
		}
	}
}

// Point is an index into the flat padded board array.
//		- row*(boardsize+1)+col is the point at (row, col), 1-indexed
//		- -1 represents the "pass" move
//		- -2 represents the "resignation" move
// A move is either a real point or one of the two sentinels; the sentinel
// value space is disjoint from all valid indices.
type Point int32

const (
	Pass   Point = -1
	Resign Point = -2
)

// IsPass returns true when the point represents a "pass" move
func (p Point) IsPass() bool { return p == Pass }

// IsResign returns true when the point represents a "resignation" move
func (p Point) IsResign() bool { return p == Resign }

// CoordToPoint transforms a two dimensional (row, col) representation into
// an index into the flat board array. Valid rows and columns are in
// [1, boardsize]; anything else is a programming error and panics.
//
// Below is the numbering of points on a 3x3 board. Spaces separate board
// points from Border points; note the one point Border spacer between
// consecutive rows (e.g. point 12).
//
//	16   17 18 19   20
//
//	12   13 14 15
//	08   09 10 11
//	04   05 06 07
//
//	00   01 02 03
//
// The empty 3x3 board is therefore encoded as
//
//	[3,3,3,3,  3,0,0,0,  3,0,0,0,  3,0,0,0,  3,3,3,3,3]
//
// with 0 = Empty and 3 = Border. Indices for all valid (row, col) pairs are
// unique, and the surrounding Border ring absorbs the four fixed neighbour
// offsets {+1, -1, +stride, -stride} without bounds checks.
func CoordToPoint(row, col, boardsize int) Point {
	if row < 1 || row > boardsize || col < 1 || col > boardsize {
		panic(fmt.Sprintf("coordinate (%d, %d) out of range for board size %d", row, col, boardsize))
	}
	ns := boardsize + 1
	return Point(ns*row + col)
}

// PointToCoord is the inverse of CoordToPoint. Pass and Resign are not
// transformed; callers check for them first.
func PointToCoord(p Point, boardsize int) (row, col int) {
	ns := boardsize + 1
	return int(p) / ns, int(p) % ns
}

// Board is the collaborator every move generator operates on. The board
// owns the flat padded array; this package never mutates it.
type Board interface {
	// Size returns the side length of the playable area.
	Size() int

	// Points returns the flat padded board array.
	Points() []Colour

	// RowStart returns the index of the first playable point of a row in
	// [1, Size()].
	RowStart(row int) Point

	// GetEmptyPoints returns the empty points on the board.
	GetEmptyPoints() []Point

	// IsLegal reports whether it is legal for the colour to play on the point.
	IsLegal(p Point, c Colour) bool

	// IsEye reports whether the point is a simple eye for the colour.
	IsEye(p Point, c Colour) bool

	// CurrentPlayer returns the colour whose turn it is to move.
	CurrentPlayer() Colour
}

// MetaState is the game-level state an OutputEncoder consumes.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	State() Board
	Result() (ended bool, winner Colour)
}
