package jsonlines

import (
	"bufio"
	"io"
)

// Reader reads JSON Lines records from an io.Reader.
//
// Line framing is done by a *bufio.Reader. If r already is one it is
// used as-is; otherwise it is wrapped. Pass your own when you need to
// control the buffer or share it with raw reads:
//
//	rdr := jsonlines.NewReader(bufio.NewReaderSize(conn, 64*1024))
//
// The reader holds no state beyond the buffered stream and a line
// count, so framed reads can be interleaved with raw reads and seeks
// through Inner without losing bytes.
type Reader struct {
	br         *bufio.Reader
	line       int64 // lines consumed, for error reporting
	maxLineLen int
}

// NewReader creates a reader of newline-delimited JSON records.
//
// Optional configuration can be provided via Option functions.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{
		br:         br,
		maxLineLen: cfg.maxLineLen,
	}
}

// Inner returns the underlying buffered stream.
//
// Anything read from it is no longer seen by the Reader, and the next
// framed Read picks up wherever the raw reads stopped.
func (r *Reader) Inner() *bufio.Reader {
	return r.br
}

// Writer writes JSON Lines records to an io.Writer.
//
// Writes are unbuffered and each record is emitted as a single Write
// call on w. Wrap w in bufio.Writer if buffering is desired:
//
//	wtr := jsonlines.NewWriter(bufio.NewWriter(f))
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer of newline-delimited JSON records.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Inner returns the underlying stream, for interleaving raw writes or
// seeks with framed records.
func (w *Writer) Inner() io.Writer {
	return w.w
}
