package jsonlines

// config holds reader configuration.
type config struct {
	maxLineLen int
}

// Option configures a Reader.
type Option func(*config)

// MaxLineLength sets the maximum allowed length of a single line in
// bytes, terminator included. Longer lines are consumed without being
// retained and reported as a *DecodeError wrapping ErrLineTooLong; the
// reader stays aligned on the next line.
//
// This bounds memory use when reading untrusted inputs.
//
// Default: 0 (no limit)
func MaxLineLength(n int) Option {
	return func(c *config) {
		c.maxLineLen = n
	}
}
