package jsonlines

import (
	"context"
	"io"
)

// lineResult carries one framed line from the read goroutine.
type lineResult struct {
	line []byte
	err  error
}

// Stream is a typed reader of JSON Lines records whose blocking calls
// honor a context.
//
// At most one line read is in flight at a time. When a Next call is
// cut short by its context the read keeps running, and the line it
// produces is delivered by the following Next, so cancellation never
// loses a record. Create one with NewStream or StreamLines.
//
// A Stream is single-owner. Calls on it must not overlap.
type Stream[T any] struct {
	r        *Reader
	pending  chan lineResult
	inFlight bool
	done     bool
}

// NewStream creates a stream decoding every record from r as a T.
//
// The Reader should not be used directly while the stream is.
func NewStream[T any](r *Reader) *Stream[T] {
	return &Stream[T]{
		r:       r,
		pending: make(chan lineResult, 1),
	}
}

// StreamLines wraps r and streams its records as T values.
func StreamLines[T any](r io.Reader, opts ...Option) *Stream[T] {
	return NewStream[T](NewReader(r, opts...))
}

// Next resolves to the next record.
//
// Returns io.EOF once the input is exhausted, and on every call after
// that. A *DecodeError does not end the stream. When ctx ends first,
// Next returns its error while the in-flight line read continues; an
// abandoned stream's read is released by closing the underlying
// source.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if s.done {
		return zero, io.EOF
	}
	if !s.inFlight {
		s.inFlight = true
		go func() {
			line, err := s.r.readLine()
			s.pending <- lineResult{line: line, err: err}
		}()
	}
	// A line that has already arrived is delivered even when ctx has
	// ended; cancellation only interrupts the wait.
	select {
	case res := <-s.pending:
		s.inFlight = false
		return s.decode(res)
	default:
	}
	select {
	case res := <-s.pending:
		s.inFlight = false
		return s.decode(res)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (s *Stream[T]) decode(res lineResult) (T, error) {
	var zero T
	if res.err != nil {
		if res.err == io.EOF {
			s.done = true
		}
		return zero, res.err
	}
	var v T
	if err := decodeValue(res.line, &v); err != nil {
		return zero, &DecodeError{Line: s.r.line, Err: err}
	}
	return v, nil
}

// Collect drains the remaining records into a slice.
//
// The first error stops the drain and is returned along with the
// records decoded before it.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for {
		v, err := s.Next(ctx)
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, v)
	}
}
