package sparql

import (
	"bufio"
	"io"
	"strings"
)

// tsvReader splits a streaming response body into tab-delimited frames.
// The bufio.Reader owns the unresolved tail between calls, so a frame may
// arrive split across arbitrarily many underlying reads without the whole
// body ever being held in memory.
type tsvReader struct {
	reader       *bufio.Reader
	maxLineBytes int
	line         int
}

func newTSVReader(r io.Reader, opts DecodeOptions) *tsvReader {
	return &tsvReader{reader: bufio.NewReader(r), maxLineBytes: opts.MaxLineBytes}
}

// readHeader reads the first frame and returns the declared variable names
// in order, stripping the leading '?' from each field.
func (t *tsvReader) readHeader() ([]string, error) {
	fields, err := t.readRecord()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMissingHeader
		}
		return nil, err
	}
	vars := make([]string, len(fields))
	for i, field := range fields {
		vars[i] = strings.TrimPrefix(field, "?")
	}
	return vars, nil
}

// readRecord returns the next frame's fields, or io.EOF once the stream is
// exhausted. Blank frames are skipped; both LF and CRLF terminators are
// accepted.
func (t *tsvReader) readRecord() ([]string, error) {
	for {
		line, err := t.readLine()
		if err != nil {
			return nil, err
		}
		t.line++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		return strings.Split(line, "\t"), nil
	}
}

func (t *tsvReader) readLine() (string, error) {
	if t.maxLineBytes < 0 {
		line, err := t.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				return line, nil
			}
			return "", err
		}
		return line, nil
	}

	var buffer []byte
	for {
		part, err := t.reader.ReadSlice('\n')
		buffer = append(buffer, part...)
		if len(buffer) > t.maxLineBytes {
			return "", ErrLineTooLong
		}
		if err == nil {
			return string(buffer), nil
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && len(buffer) > 0 {
			return string(buffer), nil
		}
		return "", err
	}
}
