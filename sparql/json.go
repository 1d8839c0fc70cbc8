package sparql

import (
	"encoding/json"
	"fmt"
	"io"
)

// SPARQL 1.1 Query Results JSON Format (application/sparql-results+json).
// This is the non-streaming alternate encoding; the whole document is
// decoded before any row is returned.

type jsonResults struct {
	Head    jsonHead      `json:"head"`
	Results *jsonBindings `json:"results"`
	Boolean *bool         `json:"boolean"`
}

type jsonHead struct {
	Vars []string `json:"vars"`
	Link []string `json:"link"`
}

type jsonBindings struct {
	Bindings []map[string]jsonTerm `json:"bindings"`
}

type jsonTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang"`
	Datatype string `json:"datatype"`
}

// DecodeSelectJSON decodes a complete SELECT response in the JSON results
// encoding, returning the projected variable names and all rows.
func DecodeSelectJSON(r io.Reader) ([]string, []Row, error) {
	var doc jsonResults
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, wrapParseError("json", "", 0, err)
	}
	if doc.Results == nil {
		return nil, nil, wrapParseError("json", "", 0, fmt.Errorf("missing results member"))
	}
	rows := make([]Row, 0, len(doc.Results.Bindings))
	for _, binding := range doc.Results.Bindings {
		row := make(Row, len(binding))
		for name, cell := range binding {
			term, err := cell.toTerm()
			if err != nil {
				return nil, nil, wrapParseError("json", cell.Value, 0, err)
			}
			row[name] = term
		}
		rows = append(rows, row)
	}
	return doc.Head.Vars, rows, nil
}

// DecodeAskJSON decodes an ASK response in the JSON results encoding.
func DecodeAskJSON(r io.Reader) (bool, error) {
	var doc jsonResults
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return false, wrapParseError("json", "", 0, err)
	}
	if doc.Boolean == nil {
		return false, wrapParseError("json", "", 0, fmt.Errorf("missing boolean member"))
	}
	return *doc.Boolean, nil
}

func (t jsonTerm) toTerm() (Term, error) {
	switch t.Type {
	case "uri":
		return IRI{Value: t.Value}, nil
	case "bnode":
		return BlankNode{ID: t.Value}, nil
	case "literal", "typed-literal":
		if t.Lang != "" && t.Datatype != "" {
			return nil, fmt.Errorf("literal with both language tag and datatype")
		}
		lit := Literal{Lexical: t.Value, Lang: t.Lang}
		if t.Datatype != "" {
			lit.Datatype = IRI{Value: t.Datatype}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("%w: term type %q", ErrUnrecognizedCell, t.Type)
	}
}
