package jsonlines

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// Read decodes the next line into v, which must be a non-nil pointer.
//
// Returns io.EOF when the stream ends. Reaching the end does not latch:
// a later Read polls the stream again, so records appended after an EOF
// are still seen.
//
// A line that cannot be decoded returns a *DecodeError and leaves the
// reader at the start of the following line, so callers can skip bad
// records and keep reading. Distinct calls may decode into distinct
// types.
func (r *Reader) Read(v any) error {
	line, err := r.readLine()
	if err != nil {
		return err
	}
	if err := decodeValue(line, v); err != nil {
		return &DecodeError{Line: r.line, Err: err}
	}
	return nil
}

// readLine consumes one line, terminator included.
//
// Returns io.EOF only when zero bytes remain; a final line with no
// trailing newline is still a full record. A line over the configured
// maximum is consumed to its end, keeping the reader aligned, and
// reported as a *DecodeError wrapping ErrLineTooLong.
func (r *Reader) readLine() ([]byte, error) {
	var line []byte
	for {
		frag, err := r.br.ReadSlice('\n')
		line = append(line, frag...)
		if err == bufio.ErrBufferFull {
			if r.maxLineLen > 0 && len(line) > r.maxLineLen {
				return nil, r.discardLine()
			}
			continue
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) == 0 {
			return nil, io.EOF
		}
		r.line++
		if r.maxLineLen > 0 && len(line) > r.maxLineLen {
			return nil, &DecodeError{Line: r.line, Err: ErrLineTooLong}
		}
		return line, nil
	}
}

// discardLine consumes through the next newline without retaining
// bytes, then reports the over-long line.
func (r *Reader) discardLine() error {
	for {
		_, err := r.br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && err != io.EOF {
			return err
		}
		r.line++
		return &DecodeError{Line: r.line, Err: ErrLineTooLong}
	}
}

// decodeValue parses exactly one JSON value from line into v.
//
// Whitespace around the value, the line terminator included, is
// tolerated. The error taxonomy comes straight from encoding/json's
// stream decoder: a value cut off by the end of the line yields
// io.ErrUnexpectedEOF (a line of pure whitespace counts as cut off
// before the value started), while complete but unusable input yields
// a *json.SyntaxError or *json.UnmarshalTypeError.
func decodeValue(line []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(line))
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	// Token rather than More: More reports false when the next byte is
	// a closing } or ], which is still trailing data. Only a clean end
	// of input may follow the value.
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}
