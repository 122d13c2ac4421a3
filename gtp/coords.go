package gtp

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
)

// The letter I is skipped by convention, so the alphabet covers MaxSize=25
// columns exactly.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// FormatPoint renders a point as a GTP vertex such as "A1"; Pass renders as
// "PASS". Precondition: p is Pass or a valid point for the board size.
func FormatPoint(p game.Point, boardsize int) string {
	if p.IsPass() {
		return "PASS"
	}
	row, col := game.PointToCoord(p, boardsize)
	if row < 1 || row > boardsize || col < 1 || col > boardsize {
		panic(errors.Errorf("point %d is not on a board of size %d", p, boardsize))
	}
	return string(columnLetters[col-1]) + strconv.Itoa(row)
}

// ParseVertex converts a GTP vertex string to a point on a board of the
// given size; "pass" maps to Pass.
func ParseVertex(s string, boardsize int) (game.Point, error) {
	if boardsize < 2 || boardsize > game.MaxSize {
		return game.Pass, errors.Errorf("board size %d out of range", boardsize)
	}
	s = strings.ToLower(s)
	if s == "pass" {
		return game.Pass, nil
	}
	if len(s) < 2 {
		return game.Pass, errors.Errorf("invalid vertex %q", s)
	}
	colC := s[0]
	if colC < 'a' || colC > 'z' || colC == 'i' {
		return game.Pass, errors.Errorf("invalid vertex %q", s)
	}
	col := int(colC - 'a')
	if colC < 'i' {
		col++
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return game.Pass, errors.Errorf("invalid vertex %q", s)
	}
	if col > boardsize || row > boardsize {
		return game.Pass, errors.Errorf("vertex %q off board", s)
	}
	return game.CoordToPoint(row, col, boardsize), nil
}

// ParseColour reads a GTP colour argument.
func ParseColour(s string) (game.Colour, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return game.Black, nil
	case "w", "white":
		return game.White, nil
	}
	return game.Empty, errors.Errorf("invalid colour %q", s)
}
