package jsonlines_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineframe/jsonlines/pkg/jsonlines"
)

// gatedReader blocks every Read until the gate is released.
type gatedReader struct {
	gate chan struct{}
	r    io.Reader
}

func newGatedReader(s string) *gatedReader {
	return &gatedReader{gate: make(chan struct{}), r: strings.NewReader(s)}
}

func (g *gatedReader) Read(p []byte) (int, error) {
	<-g.gate
	return g.r.Read(p)
}

func (g *gatedReader) release() {
	close(g.gate)
}

func TestStream_Next(t *testing.T) {
	ctx := context.Background()
	f, err := os.Open(sample("sample01.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	items := jsonlines.StreamLines[Structure](f)

	v, err := items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Foo Bar", Size: 42, On: true}, v)

	v, err = items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Quux", Size: 23, On: false}, v)

	v, err = items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Gnusto Cleesh", Size: 17, On: true}, v)

	_, err = items.Next(ctx)
	assert.Equal(t, io.EOF, err)
}

func TestStream_Next_ExhaustionIsPermanent(t *testing.T) {
	ctx := context.Background()
	items := jsonlines.StreamLines[Structure](strings.NewReader(""))
	for i := 0; i < 3; i++ {
		_, err := items.Next(ctx)
		assert.Equal(t, io.EOF, err, "call %d", i)
	}
}

func TestStream_Collect(t *testing.T) {
	f, err := os.Open(sample("sample01.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	items, err := jsonlines.StreamLines[Structure](f).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Structure{
		{Name: "Foo Bar", Size: 42, On: true},
		{Name: "Quux", Size: 23, On: false},
		{Name: "Gnusto Cleesh", Size: 17, On: true},
	}, items)
}

func TestStream_Next_MalformedLinesSurvive(t *testing.T) {
	ctx := context.Background()
	f, err := os.Open(sample("sample04.txt"))
	require.NoError(t, err)
	defer f.Close()

	items := jsonlines.StreamLines[Structure](f)

	v, err := items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Foo Bar", Size: 42, On: true}, v)

	_, err = items.Next(ctx)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	v, err = items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Quux", Size: 23, On: false}, v)

	_, err = items.Next(ctx)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = items.Next(ctx)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)

	v, err = items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Structure{Name: "Gnusto Cleesh", Size: 17, On: true}, v)

	_, err = items.Next(ctx)
	assert.Equal(t, io.EOF, err)
}

// A Next cut short by its context leaves the line read in flight; the
// next call picks up its result instead of skipping it.
func TestStream_Next_CancellationKeepsLine(t *testing.T) {
	src := newGatedReader("{\"x\": 69, \"y\": 105}\n")
	items := jsonlines.StreamLines[Point](src)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := items.Next(cancelled)
	assert.ErrorIs(t, err, context.Canceled)

	src.release()
	v, err := items.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 69, Y: 105}, v)
}

func TestStream_Collect_StopsOnCancel(t *testing.T) {
	src := newGatedReader("{\"x\": 1, \"y\": 1}\n")
	items := jsonlines.StreamLines[Point](src)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := items.Collect(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)

	src.release()
	got, err = items.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 1, Y: 1}}, got)
}

func TestNewStream_SharesReaderPosition(t *testing.T) {
	ctx := context.Background()
	rdr := jsonlines.NewReader(strings.NewReader(
		"{\"name\": \"Foo Bar\", \"size\": 42, \"on\": true}\n{\"x\": 69, \"y\": 105}\n"))

	var s Structure
	require.NoError(t, rdr.Read(&s))

	items := jsonlines.NewStream[Point](rdr)
	v, err := items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 69, Y: 105}, v)

	_, err = items.Next(ctx)
	assert.Equal(t, io.EOF, err)
}

func TestStreamLines_AppliesOptions(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("a", 9000)
	input := "\"" + long + "\"\n{\"x\": 1, \"y\": 2}\n"
	items := jsonlines.StreamLines[Point](strings.NewReader(input), jsonlines.MaxLineLength(256))

	_, err := items.Next(ctx)
	assert.ErrorIs(t, err, jsonlines.ErrLineTooLong)

	v, err := items.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 2}, v)
}
