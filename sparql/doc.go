// Package sparql provides a client for SPARQL 1.1 Protocol endpoints with
// streaming decoding of SELECT results.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// It focuses on incremental, low-memory decoding with a small surface area:
//   - Query: ParseSelectQuery() and ParseAskQuery() validate and normalize
//     query strings, classified by query form.
//   - Run: Endpoint.Select() streams SELECT rows as tab-separated values;
//     Endpoint.Ask() returns the boolean result; Endpoint.SelectJSON()
//     decodes the buffered JSON results encoding.
//   - Decode: NewSelectDecoder() wraps any streaming response body and
//     yields rows one at a time as bytes arrive.
//
// The projected variable names are available from the decoder as soon as
// the header line is received, before any row has been decoded. Rows map
// bound variable names to Term values; unbound variables are simply absent
// from the row.
//
// Example (streaming a SELECT query):
//
//	qs, err := sparql.ParseSelectQuery("SELECT ?s WHERE { ?s ?p ?o } LIMIT 10")
//	if err != nil {
//	    // handle error
//	}
//
//	endpoint := sparql.NewEndpoint(nil, "https://example.org/sparql")
//	rows, err := endpoint.Select(ctx, qs)
//	if err != nil {
//	    // handle error
//	}
//	defer rows.Close()
//
//	fmt.Println(rows.Vars())
//	for {
//	    row, err := rows.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process row
//	}
//
// CONSTRUCT and DESCRIBE queries return graph-shaped results and are not
// supported; ClassifyQuery recognizes them, but they cannot be executed.
//
// Decoders never buffer the whole response body and are safe for use by a
// single goroutine at a time. Closing a decoder before exhaustion closes
// the underlying response body, releasing the connection. No retries are
// performed; transport failures surface verbatim to the caller.
package sparql
