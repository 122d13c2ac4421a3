package ranka

import (
	"sync"
)

var iterPool = make(map[int]map[int]*sync.Pool)

func newIterPool(m, n int) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			retVal := make([][]float32, m)
			for i := range retVal {
				retVal[i] = make([]float32, n)
			}
			return retVal
		},
	}
}

func borrowIterator(m, n int) [][]float32 {
	if d, ok := iterPool[m]; ok {
		if d2, ok := d[n]; ok {
			return d2.Get().([][]float32)
		}
	}
	return newIterPool(m, n).New().([][]float32)
}

// ReturnIterator returns an iterator borrowed by MakeIterator to the pool.
func ReturnIterator(m, n int, it [][]float32) {
	if _, ok := iterPool[m]; !ok {
		iterPool[m] = make(map[int]*sync.Pool)
	}
	if _, ok := iterPool[m][n]; !ok {
		iterPool[m][n] = newIterPool(m, n)
	}
	iterPool[m][n].Put(it)
}
