package goban

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
)

// zobrist is a data structure for calculating Zobrist hashes.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The table is a matrix of (maxPoint, 2): one random value per padded point
// per player colour. Hashing over padded points wastes a few table entries
// on Border cells that never get stones, in exchange for indexing directly
// with a game.Point.
type zobrist struct {
	table []int32   // backing storage
	it    [][]int32 // iterator of (point, colour plane) views
	hash  int32
}

func makeZobrist(npoints int) zobrist {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	table, it := makeZobristTable(npoints)
	for i := range table {
		table[i] = r.Int31()
	}
	return zobrist{
		table: table,
		it:    it,
	}
}

// update xors the point's plane into the hash and returns it. Xoring the
// same point and colour again cancels the stone back out.
func (z *zobrist) update(p game.Point, c game.Colour) (int32, error) {
	switch c {
	case game.Black:
		z.hash ^= z.it[p][0]
		return z.hash, nil
	case game.White:
		z.hash ^= z.it[p][1]
		return z.hash, nil
	default:
		return 0, errors.Errorf("cannot update hash for %v at %d", c, p)
	}
}
