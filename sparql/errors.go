package sparql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnrecognizedCell indicates a cell that matches no term form.
	ErrCodeUnrecognizedCell ErrorCode = "UNRECOGNIZED_CELL"
	// ErrCodeUnknownEscape indicates an unknown backslash escape in a literal.
	ErrCodeUnknownEscape ErrorCode = "UNKNOWN_ESCAPE"
	// ErrCodeUnterminatedLiteral indicates a literal with no closing quote.
	ErrCodeUnterminatedLiteral ErrorCode = "UNTERMINATED_LITERAL"
	// ErrCodeInvalidEscape indicates a malformed \u or \U escape sequence.
	ErrCodeInvalidEscape ErrorCode = "INVALID_ESCAPE"
	// ErrCodeInvalidDatatype indicates a datatype suffix that is not <...>-delimited.
	ErrCodeInvalidDatatype ErrorCode = "INVALID_DATATYPE"
	// ErrCodeUnexpectedSuffix indicates trailing text after a literal.
	ErrCodeUnexpectedSuffix ErrorCode = "UNEXPECTED_SUFFIX"
	// ErrCodeMissingHeader indicates the stream ended before a header line.
	ErrCodeMissingHeader ErrorCode = "MISSING_HEADER"
	// ErrCodeLineTooLong indicates a line exceeded the configured limit.
	ErrCodeLineTooLong ErrorCode = "LINE_TOO_LONG"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeIOError indicates a transport or I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeHTTPError indicates a non-success HTTP response.
	ErrCodeHTTPError ErrorCode = "HTTP_ERROR"
	// ErrCodeSyntaxError indicates an unclassifiable query string.
	ErrCodeSyntaxError ErrorCode = "SYNTAX_ERROR"
	// ErrCodeWrongQueryKind indicates a query of the wrong form.
	ErrCodeWrongQueryKind ErrorCode = "WRONG_QUERY_KIND"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
)

var (
	// ErrUnrecognizedCell indicates a cell that matches no term form.
	ErrUnrecognizedCell = errors.New("sparql: unrecognized cell")
	// ErrUnknownEscape indicates an unknown backslash escape in a literal.
	ErrUnknownEscape = errors.New("sparql: unknown escape")
	// ErrUnterminatedLiteral indicates a literal with no closing quote.
	ErrUnterminatedLiteral = errors.New("sparql: unterminated string literal")
	// ErrInvalidEscape indicates a malformed \u or \U escape sequence.
	ErrInvalidEscape = errors.New("sparql: invalid escape sequence")
	// ErrInvalidDatatype indicates a datatype suffix that is not <...>-delimited.
	ErrInvalidDatatype = errors.New("sparql: invalid datatype identifier")
	// ErrUnexpectedSuffix indicates trailing text after a literal.
	ErrUnexpectedSuffix = errors.New("sparql: unexpected suffix after literal")
	// ErrMissingHeader indicates the stream ended before a header line.
	ErrMissingHeader = errors.New("sparql: stream ended before header line")
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("sparql: line exceeds configured limit")
)

// Code returns the error code for an error, or ErrCodeIOError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error
// condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnrecognizedCell):
		return ErrCodeUnrecognizedCell
	case errors.Is(err, ErrUnknownEscape):
		return ErrCodeUnknownEscape
	case errors.Is(err, ErrUnterminatedLiteral):
		return ErrCodeUnterminatedLiteral
	case errors.Is(err, ErrInvalidEscape):
		return ErrCodeInvalidEscape
	case errors.Is(err, ErrInvalidDatatype):
		return ErrCodeInvalidDatatype
	case errors.Is(err, ErrUnexpectedSuffix):
		return ErrCodeUnexpectedSuffix
	case errors.Is(err, ErrMissingHeader):
		return ErrCodeMissingHeader
	case errors.Is(err, ErrLineTooLong):
		return ErrCodeLineTooLong
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return ErrCodeHTTPError
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return ErrCodeSyntaxError
	}
	var kindErr *WrongKindError
	if errors.As(err, &kindErr) {
		return ErrCodeWrongQueryKind
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" && underlyingCode != ErrCodeIOError {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	if errors.Is(err, context.Canceled) {
		return ErrCodeContextCanceled
	}

	return ErrCodeIOError
}

// ParseError provides structured context for result decode failures.
type ParseError struct {
	Encoding string // Wire encoding ("tsv" or "json")
	Fragment string // Offending cell or input excerpt
	Line     int    // 1-based line number in the response body (0 if unknown)
	Err      error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Encoding)
	if e.Line > 0 {
		fmt.Fprintf(&msg, ":%d", e.Line)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Fragment != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt(e.Fragment))
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

const maxExcerptLen = 80

func excerpt(s string) string {
	if len(s) > maxExcerptLen {
		return s[:maxExcerptLen] + "..."
	}
	return s
}

// wrapParseError adds encoding/fragment context to a parse error.
func wrapParseError(encoding, fragment string, line int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{Encoding: encoding, Fragment: fragment, Line: line, Err: err}
}

// HTTPError reports a non-success response from the endpoint. The transport
// owns retry policy; this error is surfaced verbatim.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string // Truncated response body, if any
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("sparql: endpoint returned %s: %s", e.Status, excerpt(e.Body))
	}
	return fmt.Sprintf("sparql: endpoint returned %s", e.Status)
}
