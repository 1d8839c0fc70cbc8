package sparql

import (
	"context"
	"io"
)

// DefaultMaxLineBytes bounds a single response line unless overridden.
const DefaultMaxLineBytes = 1 << 20

// DecodeOptions configures result decoding behavior and limits.
// Zero values use defaults. Use negative values to disable specific limits.
type DecodeOptions struct {
	// MaxLineBytes bounds a single header or record line, protecting
	// against unbounded buffering on malformed input.
	MaxLineBytes int
	// Context provides cancellation for decoding work.
	Context context.Context
}

// DefaultDecodeOptions returns safe defaults for decoder limits.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxLineBytes: DefaultMaxLineBytes}
}

func normalizeDecodeOptions(opts DecodeOptions) DecodeOptions {
	if opts.MaxLineBytes == 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return opts
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	select {
	case <-c.ctx.Done():
		return 0, c.ctx.Err()
	default:
		return c.r.Read(p)
	}
}
