package sparql

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEndpointSelectStreams(t *testing.T) {
	const body = "?s\t?o\n<http://example.org/a>\t\"hello\"\n"

	var gotQuery, gotAccept, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		gotQuery = r.FormValue("query")
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/tab-separated-values")
		io.WriteString(w, body)
	}))
	defer server.Close()

	client := &Client{Agent: UserAgent{Name: "myapp", Version: "1.2.3", Contact: "me@example.org"}}
	endpoint := NewEndpoint(client, server.URL)

	query, err := ParseSelectQuery("SELECT ?s ?o WHERE { ?s <http://example.org/p> ?o }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec, err := endpoint.Select(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dec.Close()

	if gotQuery != string(query) {
		t.Fatalf("unexpected query sent %q", gotQuery)
	}
	if gotAccept != "text/tab-separated-values" {
		t.Fatalf("unexpected Accept %q", gotAccept)
	}
	if gotAgent != "myapp/1.2.3 (me@example.org) sparql-go/"+Version {
		t.Fatalf("unexpected User-Agent %q", gotAgent)
	}

	if vars := dec.Vars(); len(vars) != 2 || vars[0] != "s" {
		t.Fatalf("unexpected vars %v", vars)
	}
	row, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit, ok := row["o"].(Literal); !ok || lit.Lexical != "hello" {
		t.Fatalf("unexpected binding %v", row["o"])
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestEndpointSelectHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "malformed query", http.StatusBadRequest)
	}))
	defer server.Close()

	endpoint := NewEndpoint(nil, server.URL)
	_, err := endpoint.Select(context.Background(), SelectQuery("SELECT ?s WHERE { ?s ?p ?o }"))
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Body, "malformed query") {
		t.Fatalf("unexpected body %q", httpErr.Body)
	}
	if Code(err) != ErrCodeHTTPError {
		t.Fatalf("unexpected code %s", Code(err))
	}
}

func TestEndpointSelectEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	endpoint := NewEndpoint(nil, server.URL)
	_, err := endpoint.Select(context.Background(), SelectQuery("SELECT ?s WHERE { ?s ?p ?o }"))
	if !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected missing header error, got %v", err)
	}
}

func TestEndpointAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/sparql-results+json" {
			t.Errorf("unexpected Accept %q", accept)
		}
		w.Header().Set("Content-Type", "application/sparql-results+json")
		io.WriteString(w, `{"head":{},"boolean":true}`)
	}))
	defer server.Close()

	endpoint := NewEndpoint(nil, server.URL)
	query, err := ParseAskQuery("ASK { <http://example.org/a> ?p ?o }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := endpoint.Ask(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result {
		t.Fatal("expected true")
	}
}

func TestEndpointSelectJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/sparql-results+json")
		io.WriteString(w, `{"head":{"vars":["s"]},"results":{"bindings":[{"s":{"type":"uri","value":"http://example.org/a"}}]}}`)
	}))
	defer server.Close()

	endpoint := NewEndpoint(nil, server.URL)
	vars, rows, err := endpoint.SelectJSON(context.Background(), SelectQuery("SELECT ?s WHERE { ?s ?p ?o }"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vars) != 1 || len(rows) != 1 {
		t.Fatalf("unexpected results %v %v", vars, rows)
	}
	if iri, ok := rows[0]["s"].(IRI); !ok || iri.Value != "http://example.org/a" {
		t.Fatalf("unexpected binding %v", rows[0]["s"])
	}
}

func TestEndpointContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "?s\n")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	endpoint := NewEndpoint(nil, server.URL)
	if _, err := endpoint.Select(ctx, SelectQuery("SELECT ?s WHERE { ?s ?p ?o }")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
