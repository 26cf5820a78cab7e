package jsonlines

import (
	"bufio"
	"os"
)

// WriteFile writes items to the named file as JSON Lines, one record
// per line, creating the file or truncating whatever it held.
func WriteFile[T any](path string, items []T) error {
	return writeFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, items)
}

// AppendFile appends items to the named file as JSON Lines, creating
// it if needed. Existing content is left untouched, so appending zero
// items changes nothing.
func AppendFile[T any](path string, items []T) error {
	return writeFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, items)
}

func writeFile[T any](path string, flag int, items []T) error {
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := WriteLines(bw, items); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Open opens the named file for reading as JSON Lines.
//
// The returned iterator owns the file; its Close releases it.
func Open[T any](path string, opts ...Option) (*Iter[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	it := NewIter[T](NewReader(f, opts...))
	it.closer = f
	return it, nil
}

// ReadFile decodes every record in the named file into a slice.
func ReadFile[T any](path string, opts ...Option) ([]T, error) {
	it, err := Open[T](path, opts...)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	return it.Collect()
}
