package jsonlines

import (
	"encoding/json"
	"io"
)

// Write encodes v as compact JSON followed by a newline.
//
// The record and its terminator reach the underlying stream as one
// Write call. An encode failure is returned before anything is
// written. Write never flushes; call Flush when durability matters.
func (w *Writer) Write(v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.w.Write(buf)
	return err
}

// Flush forwards to the underlying stream's Flush method, if any.
//
// Writing never flushes on its own, so a batch of records costs a
// single flush:
//
//	for _, item := range items {
//		wtr.Write(item)
//	}
//	wtr.Flush()
func (w *Writer) Flush() error {
	if f, ok := w.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// WriteAll encodes each item in order as one line each, stopping at
// the first failure. Nothing is flushed.
func WriteAll[T any](w *Writer, items []T) error {
	for _, item := range items {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// WriteLines encodes each item in order as one JSON line on w,
// stopping at the first failure. Nothing is flushed.
func WriteLines[T any](w io.Writer, items []T) error {
	return WriteAll(NewWriter(w), items)
}
