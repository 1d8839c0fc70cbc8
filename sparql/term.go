package sparql

import (
	"fmt"
	"strings"
)

// ParseTerm decodes one non-empty cell of a tab-separated result row.
//
// Cells follow the SPARQL 1.1 TSV results grammar: IRIs as <...>, blank
// nodes as _:label, and literals as "..." with an optional @lang or
// ^^<datatype> suffix. IRI content is taken verbatim between the delimiters;
// only literal bodies are unescaped.
func ParseTerm(cell string) (Term, error) {
	if cell == "" {
		return nil, fmt.Errorf("%w: empty cell", ErrUnrecognizedCell)
	}
	switch cell[0] {
	case '<':
		if len(cell) < 2 || cell[len(cell)-1] != '>' {
			return nil, fmt.Errorf("%w: unterminated IRI %q", ErrUnrecognizedCell, cell)
		}
		return IRI{Value: cell[1 : len(cell)-1]}, nil
	case '_':
		if !strings.HasPrefix(cell, "_:") {
			return nil, fmt.Errorf("%w %q", ErrUnrecognizedCell, cell)
		}
		return BlankNode{ID: cell[2:]}, nil
	case '"':
		return parseLiteralCell(cell)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnrecognizedCell, cell)
	}
}

func parseLiteralCell(cell string) (Term, error) {
	lexical, rest, err := unquote(cell)
	if err != nil {
		return nil, err
	}
	switch {
	case rest == "":
		return Literal{Lexical: lexical}, nil
	case rest[0] == '@':
		return Literal{Lexical: lexical, Lang: rest[1:]}, nil
	case strings.HasPrefix(rest, "^^"):
		dt := rest[2:]
		if len(dt) < 2 || dt[0] != '<' || dt[len(dt)-1] != '>' {
			return nil, fmt.Errorf("%w %q", ErrInvalidDatatype, dt)
		}
		return Literal{Lexical: lexical, Datatype: IRI{Value: dt[1 : len(dt)-1]}}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnexpectedSuffix, rest)
	}
}
