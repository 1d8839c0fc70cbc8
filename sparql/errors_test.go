package sparql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestCodeClassification(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{io.EOF, ""},
		{ErrUnterminatedLiteral, ErrCodeUnterminatedLiteral},
		{ErrUnknownEscape, ErrCodeUnknownEscape},
		{ErrInvalidDatatype, ErrCodeInvalidDatatype},
		{ErrMissingHeader, ErrCodeMissingHeader},
		{ErrLineTooLong, ErrCodeLineTooLong},
		{fmt.Errorf("wrapped: %w", ErrUnexpectedSuffix), ErrCodeUnexpectedSuffix},
		{&HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}, ErrCodeHTTPError},
		{&SyntaxError{Reason: "empty query"}, ErrCodeSyntaxError},
		{&WrongKindError{Expected: QuerySelect, Provided: QueryAsk}, ErrCodeWrongQueryKind},
		{context.Canceled, ErrCodeContextCanceled},
		{errors.New("connection reset"), ErrCodeIOError},
	}
	for _, tc := range cases {
		if got := Code(tc.err); got != tc.want {
			t.Fatalf("%v: got %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestCodeUnwrapsParseError(t *testing.T) {
	err := wrapParseError("tsv", `"bad`, 3, ErrUnterminatedLiteral)
	if got := Code(err); got != ErrCodeUnterminatedLiteral {
		t.Fatalf("got %s, want %s", got, ErrCodeUnterminatedLiteral)
	}
	generic := wrapParseError("json", "", 0, errors.New("unexpected end of JSON input"))
	if got := Code(generic); got != ErrCodeParseError {
		t.Fatalf("got %s, want %s", got, ErrCodeParseError)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Encoding: "tsv", Fragment: `"unterminated`, Line: 2, Err: ErrUnterminatedLiteral}
	msg := err.Error()
	if !strings.HasPrefix(msg, "tsv:2: ") {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.Contains(msg, `"unterminated`) {
		t.Fatalf("message must carry the offending fragment: %q", msg)
	}
	if !errors.Is(err, ErrUnterminatedLiteral) {
		t.Fatal("ParseError must unwrap to its cause")
	}
}

func TestParseErrorExcerptTruncates(t *testing.T) {
	err := &ParseError{Encoding: "tsv", Fragment: strings.Repeat("x", 200), Err: ErrUnrecognizedCell}
	if !strings.Contains(err.Error(), "...") {
		t.Fatalf("long fragment must be truncated: %q", err.Error())
	}
}

func TestWrapParseErrorKeepsExisting(t *testing.T) {
	inner := wrapParseError("tsv", "cell", 1, ErrUnknownEscape)
	outer := wrapParseError("tsv", "line", 2, inner)
	if outer != inner {
		t.Fatal("wrapping a ParseError again must keep the inner context")
	}
	if wrapParseError("tsv", "", 0, nil) != nil {
		t.Fatal("wrapping nil must stay nil")
	}
}
