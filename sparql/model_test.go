package sparql

import "testing"

func TestTermKinds(t *testing.T) {
	if (IRI{}).Kind() != TermIRI {
		t.Fatal("unexpected IRI kind")
	}
	if (BlankNode{}).Kind() != TermBlankNode {
		t.Fatal("unexpected blank node kind")
	}
	if (Literal{}).Kind() != TermLiteral {
		t.Fatal("unexpected literal kind")
	}
}

func TestTermString(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{IRI{Value: "http://example.org/a"}, "http://example.org/a"},
		{BlankNode{ID: "b0"}, "_:b0"},
		{Literal{Lexical: "hello"}, `"hello"`},
		{Literal{Lexical: "hello", Lang: "en"}, `"hello"@en`},
		{Literal{Lexical: "42", Datatype: IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"}}, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
	}
	for _, tc := range cases {
		if got := tc.term.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
