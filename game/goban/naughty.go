package goban

import (
	"reflect"
	"unsafe"

	"github.com/senseis/ranka/game"
)

// maxPoint is the length of the padded backing array: the playable points
// plus a full Border row below, a full row above, a spacer column and one
// trailing cell.
func maxPoint(size int) int { return size*size + 3*(size+1) }

// makeBoard makes the padded backing array of a size x size board, filled
// with Border everywhere the playable rows don't cover. Additionally, it
// returns a 2D iterator of unsafe row views into the playable cells.
func makeBoard(size int) (board []game.Colour, iterator [][]game.Colour) {
	board = make([]game.Colour, maxPoint(size))
	for i := range board {
		board[i] = game.Border
	}

	ns := size + 1
	iterator = make([][]game.Colour, size)
	for i := range iterator {
		start := (i+1)*ns + 1
		for j := start; j < start+size; j++ {
			board[j] = game.Empty
		}
		hdr := &reflect.SliceHeader{
			Data: uintptr(unsafe.Pointer(&board[start])),
			Len:  size,
			Cap:  size,
		}
		iterator[i] = *(*[]game.Colour)(unsafe.Pointer(hdr))
	}
	return board, iterator
}

func makeZobristTable(npoints int) (table []int32, iterator [][]int32) {
	table = make([]int32, npoints*2)
	iterator = make([][]int32, npoints)
	rowStride := 2
	for i := range iterator {
		start := i * rowStride
		hdr := &reflect.SliceHeader{
			Data: uintptr(unsafe.Pointer(&table[start])),
			Len:  rowStride,
			Cap:  rowStride,
		}
		iterator[i] = *(*[]int32)(unsafe.Pointer(hdr))
	}
	return table, iterator
}
