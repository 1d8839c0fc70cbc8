package sparql

import "io"

// SelectDecoder streams rows from a SELECT response in the tab-separated
// values encoding.
//
// The header frame is decoded eagerly by NewSelectDecoder, so Vars is
// available before the first row has arrived. Rows are then decoded one
// frame at a time as bytes trickle in. A SelectDecoder is owned by a single
// goroutine; no internal locking is provided or required.
type SelectDecoder struct {
	reader *tsvReader
	src    io.Reader
	vars   []string
	err    error
	closed bool
}

// NewSelectDecoder wraps a streaming response body and decodes its header
// frame. It fails if the byte source fails or ends before one full header
// frame is read.
func NewSelectDecoder(r io.Reader, opts ...DecodeOptions) (*SelectDecoder, error) {
	options := DefaultDecodeOptions()
	if len(opts) > 0 {
		options = normalizeDecodeOptions(opts[0])
	}
	src := r
	if options.Context != nil {
		src = &contextReader{ctx: options.Context, r: r}
	}
	reader := newTSVReader(src, options)
	vars, err := reader.readHeader()
	if err != nil {
		return nil, err
	}
	return &SelectDecoder{reader: reader, src: r, vars: vars}, nil
}

// Vars returns the projected variable names declared by the header frame,
// in projection order.
func (d *SelectDecoder) Vars() []string { return d.vars }

// Next returns the next decoded row, or io.EOF once the stream is
// exhausted. Any other error is terminal: no further rows will be produced
// and subsequent calls return the same error.
//
// Fields are paired positionally with the header variables; fields beyond
// the header length, and variables with no corresponding field, are simply
// not paired. An empty field denotes an unbound variable and is omitted
// from the row.
func (d *SelectDecoder) Next() (Row, error) {
	if d.err != nil {
		return nil, d.err
	}
	fields, err := d.reader.readRecord()
	if err != nil {
		d.err = err
		return nil, err
	}
	row := make(Row, len(d.vars))
	for i, name := range d.vars {
		if i >= len(fields) {
			break
		}
		cell := fields[i]
		if cell == "" {
			continue
		}
		term, err := ParseTerm(cell)
		if err != nil {
			d.err = wrapParseError("tsv", cell, d.reader.line, err)
			return nil, d.err
		}
		row[name] = term
	}
	return row, nil
}

// Err returns the terminal error, if any. io.EOF is not reported.
func (d *SelectDecoder) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// Close releases the underlying response body when it is an io.Closer.
// Closing before exhaustion is the way to abandon a stream early without
// leaking the connection.
func (d *SelectDecoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if closer, ok := d.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
