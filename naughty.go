package ranka

import (
	"reflect"
	"unsafe"
)

// MakeIterator makes a generic 2D iterator over an encoded board. The rows
// alias the backing slice; return the iterator with ReturnIterator when
// done.
func MakeIterator(board []float32, m, n int) (retVal [][]float32) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		start := i * n
		hdr := (*reflect.SliceHeader)(unsafe.Pointer(&retVal[i]))
		hdr.Data = uintptr(unsafe.Pointer(&board[start]))
		hdr.Len = n
		hdr.Cap = n
	}
	return
}
