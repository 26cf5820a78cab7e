// Package jsonlines implements reading and writing of JSON Lines
// data, streams of JSON values delimited by newlines.
//
// Each record is one line of UTF-8 holding a single JSON value and
// terminated by '\n'. Writers emit compact JSON; readers tolerate
// whitespace around the value, including a trailing '\r'.
//
//	{"name":"Foo Bar","size":42,"on":true}
//	{"name":"Quux","size":23,"on":false}
//
// # Basic Usage
//
// Writing:
//
//	wtr := jsonlines.NewWriter(bufio.NewWriter(f))
//	wtr.Write(&Event{Name: "started"})
//	wtr.Write(&Event{Name: "stopped"})
//	wtr.Flush()
//
// Reading:
//
//	rdr := jsonlines.NewReader(f)
//	for {
//		var ev Event
//		err := rdr.Read(&ev)
//		if err == io.EOF {
//			break
//		}
//		...
//	}
//
// # Bulk Access
//
// Iter pulls typed records one by one; Lines builds one straight from
// a stream, and Open from a file:
//
//	items, err := jsonlines.Lines[Event](f).Collect()
//
// A line that fails to decode yields a *DecodeError and the sequence
// keeps going, so one bad record does not cost the rest of the file.
// WriteFile, AppendFile, and ReadFile cover the whole-file cases.
//
// # Contexts
//
// Stream and Sink are the context-aware counterparts of Iter and
// Writer for use alongside other cancellable work. Their state
// survives cancellation: a Stream keeps the line read that was in
// flight, a Sink keeps its partially written record, and the next
// call resumes where the last one stopped.
//
// # Design Principles
//
// This library is designed for composability:
//
//   - No hidden buffering: one bufio.Reader frames input lines, and
//     writers pass records straight through
//   - Users control buffering and flushing: wrap streams in
//     bufio.Writer as needed, Flush is always explicit
//   - Raw access: Inner exposes the underlying stream so framed and
//     raw I/O can be interleaved without losing bytes
//   - Simple interfaces: stdlib types only
//
// # Security
//
// Readers retain whatever a line holds until its newline arrives. The
// MaxLineLength option bounds that, for inputs that are not trusted
// to keep their lines reasonable.
package jsonlines
