package sparql

import (
	"fmt"
	"strings"
)

// QueryKind identifies the top-level form of a SPARQL query.
type QueryKind string

const (
	// QuerySelect is a SELECT query, returning a table of variable bindings.
	QuerySelect QueryKind = "SELECT"
	// QueryConstruct is a CONSTRUCT query, returning an RDF graph. Not supported.
	QueryConstruct QueryKind = "CONSTRUCT"
	// QueryDescribe is a DESCRIBE query, returning an RDF graph. Not supported.
	QueryDescribe QueryKind = "DESCRIBE"
	// QueryAsk is an ASK query, returning a boolean.
	QueryAsk QueryKind = "ASK"
)

func (k QueryKind) String() string { return string(k) }

// SyntaxError reports a query string that could not be classified.
type SyntaxError struct {
	Query  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sparql: syntax error: %s", e.Reason)
}

// WrongKindError reports a well-formed query of the wrong form, for example
// an ASK string passed to ParseSelectQuery.
type WrongKindError struct {
	Expected QueryKind
	Provided QueryKind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("sparql: expected %s query but got %s", e.Expected, e.Provided)
}

// SelectQuery is a validated, normalized SELECT query string.
type SelectQuery string

// AskQuery is a validated, normalized ASK query string.
type AskQuery string

// ParseSelectQuery validates text as a SELECT query and returns its
// normalized form.
func ParseSelectQuery(text string) (SelectQuery, error) {
	kind, normalized, err := ClassifyQuery(text)
	if err != nil {
		return "", err
	}
	if kind != QuerySelect {
		return "", &WrongKindError{Expected: QuerySelect, Provided: kind}
	}
	return SelectQuery(normalized), nil
}

// ParseAskQuery validates text as an ASK query and returns its normalized
// form.
func ParseAskQuery(text string) (AskQuery, error) {
	kind, normalized, err := ClassifyQuery(text)
	if err != nil {
		return "", err
	}
	if kind != QueryAsk {
		return "", &WrongKindError{Expected: QueryAsk, Provided: kind}
	}
	return AskQuery(normalized), nil
}

// ClassifyQuery determines the form of a SPARQL query by its first query
// keyword, skipping comments and the PREFIX/BASE prologue, and returns the
// kind together with the whitespace-normalized query text.
//
// This is a keyword-level classifier, not a full grammar: a string that the
// endpoint would reject can still classify here, but the kind of any valid
// query is determined correctly. Full syntax checking is left to the
// endpoint.
func ClassifyQuery(text string) (QueryKind, string, error) {
	normalized := normalizeQuery(text)
	if normalized == "" {
		return "", "", &SyntaxError{Query: text, Reason: "empty query"}
	}
	for _, token := range strings.Fields(normalized) {
		// Quoted strings, IRIs, and prefixed names never look like a bare
		// query keyword; prologue tokens (PREFIX/BASE and their arguments)
		// fall through.
		if cut := strings.IndexAny(token, "{(*"); cut >= 0 {
			token = token[:cut]
		}
		switch strings.ToUpper(token) {
		case "SELECT":
			return QuerySelect, normalized, nil
		case "CONSTRUCT":
			return QueryConstruct, normalized, nil
		case "DESCRIBE":
			return QueryDescribe, normalized, nil
		case "ASK":
			return QueryAsk, normalized, nil
		}
	}
	return "", "", &SyntaxError{Query: text, Reason: "no query form found"}
}

// normalizeQuery strips comments and collapses whitespace runs to single
// spaces. A '#' inside an IRI or string literal does not start a comment.
func normalizeQuery(text string) string {
	var builder strings.Builder
	var quote byte
	inIRI := false
	inComment := false
	pendingSpace := false

	emit := func(ch byte) {
		if pendingSpace && builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		pendingSpace = false
		builder.WriteByte(ch)
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case inComment:
			if ch == '\n' {
				inComment = false
				pendingSpace = true
			}
		case quote != 0:
			builder.WriteByte(ch)
			if ch == '\\' && i+1 < len(text) {
				i++
				builder.WriteByte(text[i])
			} else if ch == quote {
				quote = 0
			}
		case inIRI:
			builder.WriteByte(ch)
			if ch == '>' {
				inIRI = false
			}
		case ch == '#':
			inComment = true
		case ch == '"' || ch == '\'':
			emit(ch)
			quote = ch
		case ch == '<':
			emit(ch)
			inIRI = true
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			pendingSpace = true
		default:
			emit(ch)
		}
	}
	return builder.String()
}
