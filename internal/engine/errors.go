package engine

import "fmt"

// IndexError is the panic value raised when a row operation is given a
// position outside the list. The board never produces one, so hitting it
// means a caller bug rather than bad user input.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("%s: row index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(IndexError{Op: op, Index: i, Len: n})
	}
}
