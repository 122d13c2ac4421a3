package ranka

import (
	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// EncodeTwoPlayerBoard encodes black as 1, white as -1 for each stone
// placed. Empty and Border cells encode as 0.
func EncodeTwoPlayerBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// EncodePlanes encodes the unpadded board as three feature planes: the
// stones seen black-positive, the stones seen white-positive, and a
// constant to-move plane (1 for Black, -1 for White).
func EncodePlanes(b game.Board) []float32 {
	size := b.Size()
	n := size * size
	retVal := make([]float32, 3*n)

	flat := make([]game.Colour, 0, n)
	for _, row := range game.TwoDBoard(b) {
		flat = append(flat, row...)
	}
	encodeBlack(flat, retVal[:n])
	encodeWhite(flat, retVal[n:2*n])

	mover := float32(1)
	if b.CurrentPlayer() == game.White {
		mover = -1
	}
	for i := 2 * n; i < 3*n; i++ {
		retVal[i] = mover
	}
	return retVal
}

func encodeBlack(a []game.Colour, prealloc []float32) []float32 {
	return EncodeTwoPlayerBoard(a, prealloc)
}

func encodeWhite(a []game.Colour, prealloc []float32) []float32 {
	retVal := EncodeTwoPlayerBoard(a, prealloc)
	vecf32.Scale(retVal, -1)
	return retVal
}

// BoardTensor returns the unpadded board as a (size, size) tensor of int32
// colour codes: the dense counterpart of game.TwoDBoard. A fresh tensor is
// allocated on every call.
func BoardTensor(b game.Board) *tensor.Dense {
	size := b.Size()
	backing := make([]int32, 0, size*size)
	for _, row := range game.TwoDBoard(b) {
		for _, c := range row {
			backing = append(backing, int32(c))
		}
	}
	return tensor.New(tensor.WithShape(size, size), tensor.WithBacking(backing))
}

// RotateBoard rotates an encoded board a quarter turn anticlockwise, for
// augmenting game records. Only square boards can be rotated.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	copied := make([]float32, len(board))
	copy(copied, board)
	it := MakeIterator(copied, m, n)
	for i := 0; i < m/2; i++ {
		mi1 := m - i - 1
		for j := i; j < mi1; j++ {
			mj1 := m - j - 1
			tmp := it[i][j]
			// right to top
			it[i][j] = it[j][mi1]

			// bottom to right
			it[j][mi1] = it[mi1][mj1]

			// left to bottom
			it[mi1][mj1] = it[mj1][i]

			// tmp is left
			it[mj1][i] = tmp
		}
	}
	ReturnIterator(m, n, it)
	return copied, nil
}
