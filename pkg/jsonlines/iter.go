package jsonlines

import (
	"io"
	"iter"
)

// Iter is a typed pull iterator over JSON Lines records.
//
// A malformed line yields its error and the iteration keeps going;
// running out of input ends it for good. Create one with NewIter,
// Lines, or Open.
type Iter[T any] struct {
	r      *Reader
	done   bool
	closer io.Closer // set when the iterator owns its source
}

// NewIter creates an iterator decoding every record from r as a T.
//
// The Reader should not be used directly while the iterator is.
func NewIter[T any](r *Reader) *Iter[T] {
	return &Iter[T]{r: r}
}

// Lines wraps r and iterates its records as T values.
func Lines[T any](r io.Reader, opts ...Option) *Iter[T] {
	return NewIter[T](NewReader(r, opts...))
}

// Next returns the next record.
//
// Returns io.EOF once the input is exhausted, and on every call after
// that. A *DecodeError does not end the iteration: the next call moves
// on to the following line.
func (it *Iter[T]) Next() (T, error) {
	var zero T
	if it.done {
		return zero, io.EOF
	}
	var v T
	if err := it.r.Read(&v); err != nil {
		if err == io.EOF {
			it.done = true
		}
		return zero, err
	}
	return v, nil
}

// Collect drains the remaining records into a slice.
//
// The first error stops the drain and is returned along with the
// records decoded before it.
func (it *Iter[T]) Collect() ([]T, error) {
	var items []T
	for {
		v, err := it.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, v)
	}
}

// Seq adapts the iterator for range-over-func loops. Each step yields
// either a record or the error its line produced:
//
//	for v, err := range it.Seq() {
//		if err != nil {
//			continue // skip malformed lines
//		}
//		...
//	}
func (it *Iter[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := it.Next()
			if err == io.EOF {
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

// Close releases the underlying source when the iterator owns it, as
// with Open. On iterators over caller-supplied streams it is a no-op.
func (it *Iter[T]) Close() error {
	if it.closer == nil {
		return nil
	}
	return it.closer.Close()
}
