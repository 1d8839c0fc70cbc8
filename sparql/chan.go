package sparql

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// SelectRowsChan pumps decoded rows into a channel. The channel closes when
// the stream is exhausted, fails, or ctx is canceled. The returned wait
// function closes the decoder and reports the terminal error; it must be
// called after the channel has been drained.
func SelectRowsChan(ctx context.Context, dec *SelectDecoder) (<-chan Row, func() error) {
	rows := make(chan Row)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(rows)
		for {
			row, err := dec.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case rows <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
	wait := func() error {
		err := group.Wait()
		if closeErr := dec.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return rows, wait
}
