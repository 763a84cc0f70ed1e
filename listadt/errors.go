package listadt

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Get when an index is outside
// [0, Size()-1] and by Add when it is outside [0, Size()].
//
// The returned error wraps ErrIndexOutOfRange with the offending index and
// the list size; compare with [errors.Is]:
//
//	if _, err := l.Get(5); errors.Is(err, listadt.ErrIndexOutOfRange) {
//	    // handle the bad index
//	}
var ErrIndexOutOfRange = errors.New("listadt: index out of range")

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}
