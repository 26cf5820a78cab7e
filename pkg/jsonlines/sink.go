package jsonlines

import (
	"context"
	"encoding/json"
	"io"
)

// Sink is a push consumer of JSON Lines records.
//
// Each record is encoded exactly once into a pending buffer and then
// drained to the underlying stream. The sink tracks how far the drain
// got: when a write fails or a context ends partway, the undrained
// bytes stay pending, and the next Send, Flush, or Close resumes at
// that point. No byte is encoded or written twice, and records never
// interleave.
//
// A Sink is single-owner. Calls on it must not overlap.
type Sink[T any] struct {
	w   io.Writer
	buf []byte // pending encoded record, nil when none
	off int    // bytes of buf already written
}

// NewSink creates a sink writing records to w.
//
// Writes are unbuffered. Wrap w in bufio.Writer if buffering is
// desired; Flush and Close reach through to it.
func NewSink[T any](w io.Writer) *Sink[T] {
	return &Sink[T]{w: w}
}

// Ready reports whether no bytes are pending from an earlier send, so
// the next Send can accept a record without draining first.
func (s *Sink[T]) Ready() bool {
	return s.buf == nil
}

// Send encodes v and writes it as one JSON line.
//
// Bytes still pending from an earlier call are drained first, so a new
// record is never encoded while one is in flight. An encode failure
// leaves the sink unchanged with nothing written.
func (s *Sink[T]) Send(ctx context.Context, v T) error {
	if err := s.drain(ctx); err != nil {
		return err
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.buf = append(buf, '\n')
	s.off = 0
	return s.drain(ctx)
}

// SendAll sends each item in order, stopping at the first failure.
func (s *Sink[T]) SendAll(ctx context.Context, items []T) error {
	for _, item := range items {
		if err := s.Send(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// drain writes the pending buffer, advancing the offset on partial
// progress so a resumed drain picks up exactly where this one stopped.
func (s *Sink[T]) drain(ctx context.Context) error {
	for s.buf != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := s.w.Write(s.buf[s.off:])
		s.off += n
		if err != nil {
			return err
		}
		if s.off >= len(s.buf) {
			s.buf, s.off = nil, 0
		}
	}
	return nil
}

// Flush drains pending bytes, then forwards to the underlying
// stream's Flush method, if any.
func (s *Sink[T]) Flush(ctx context.Context) error {
	if err := s.drain(ctx); err != nil {
		return err
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close drains and flushes pending bytes, then closes the underlying
// stream when it is an io.Closer.
func (s *Sink[T]) Close(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
