package game

import (
	"math/rand"
)

// GenerateLegalMoves generates the list of all legal moves on the board for
// a colour, in the order GetEmptyPoints yields them. The Pass move is never
// included; Pass is always legal separately and adding it is the caller's
// business.
func GenerateLegalMoves(b Board, c Colour) []Point {
	empties := b.GetEmptyPoints()
	moves := make([]Point, 0, len(empties))
	for _, p := range empties {
		if b.IsLegal(p, c) {
			moves = append(moves, p)
		}
	}
	return moves
}

// GenerateRandomMove picks an empty point uniformly at random, or Pass when
// the board has none. Legality is NOT checked: callers that need a legal
// move must re-check or use GenerateRandomMoves instead. The asymmetry with
// GenerateLegalMoves is deliberate.
func GenerateRandomMove(b Board, c Colour, r *rand.Rand) Point {
	moves := b.GetEmptyPoints()
	if len(moves) == 0 {
		return Pass
	}
	r.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	return moves[0]
}

// GenerateRandomMoves returns the candidate moves for the current player:
// every empty point that is legal and, when useEyeFilter is set, is not a
// simple eye of the current player. The current player is read once and
// held fixed for the whole pass.
func GenerateRandomMoves(b Board, useEyeFilter bool) []Point {
	cur := b.CurrentPlayer()
	var moves []Point
	for _, p := range b.GetEmptyPoints() {
		if useEyeFilter && b.IsEye(p, cur) {
			continue
		}
		if b.IsLegal(p, cur) {
			moves = append(moves, p)
		}
	}
	return moves
}

// TwoDBoard returns the stones of the board as a freshly allocated
// size x size grid. The Border padding is stripped entirely: playable rows
// 1..size are copied into output rows 0..size-1.
func TwoDBoard(b Board) [][]Colour {
	size := b.Size()
	board := b.Points()
	retVal := make([][]Colour, size)
	for row := 1; row <= size; row++ {
		start := int(b.RowStart(row))
		retVal[row-1] = make([]Colour, size)
		copy(retVal[row-1], board[start:start+size])
	}
	return retVal
}
