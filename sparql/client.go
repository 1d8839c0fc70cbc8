package sparql

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.1.0"

const (
	acceptTSV  = "text/tab-separated-values"
	acceptJSON = "application/sparql-results+json"
)

// UserAgent identifies the calling application to the endpoint. Public
// endpoints such as Wikidata require a descriptive User-Agent with contact
// information.
type UserAgent struct {
	Name    string
	Version string
	Contact string
}

func (a UserAgent) headerValue() string {
	return fmt.Sprintf("%s/%s (%s) sparql-go/%s", a.Name, a.Version, a.Contact, Version)
}

// Client issues SPARQL Protocol requests. The zero value is usable.
type Client struct {
	// HTTP is the underlying HTTP client. Nil uses http.DefaultClient.
	HTTP *http.Client
	// Agent composes the User-Agent header when non-zero.
	Agent UserAgent
}

func (c *Client) httpClient() *http.Client {
	if c == nil || c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// Endpoint is a SPARQL query service bound to a client.
type Endpoint struct {
	URL    string
	Client *Client
}

// NewEndpoint binds a query service URL to a client. A nil client uses
// defaults.
func NewEndpoint(client *Client, serviceURL string) *Endpoint {
	if client == nil {
		client = &Client{}
	}
	return &Endpoint{URL: serviceURL, Client: client}
}

// Select runs a SELECT query and streams the response rows in the
// tab-separated values encoding. The returned decoder owns the response
// body; Close it to release the connection.
func (e *Endpoint) Select(ctx context.Context, query SelectQuery, opts ...DecodeOptions) (*SelectDecoder, error) {
	resp, err := e.do(ctx, string(query), acceptTSV)
	if err != nil {
		return nil, err
	}
	dec, err := NewSelectDecoder(resp.Body, opts...)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	return dec, nil
}

// SelectJSON runs a SELECT query using the JSON results encoding. Unlike
// Select it buffers all rows before returning.
func (e *Endpoint) SelectJSON(ctx context.Context, query SelectQuery) ([]string, []Row, error) {
	resp, err := e.do(ctx, string(query), acceptJSON)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	return DecodeSelectJSON(resp.Body)
}

// Ask runs an ASK query and returns its boolean result.
func (e *Endpoint) Ask(ctx context.Context, query AskQuery) (bool, error) {
	resp, err := e.do(ctx, string(query), acceptJSON)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return DecodeAskJSON(resp.Body)
}

func (e *Endpoint) do(ctx context.Context, query, accept string) (*http.Response, error) {
	client := e.Client
	if client == nil {
		client = &Client{}
	}
	form := url.Values{"query": []string{query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", accept)
	if client.Agent != (UserAgent{}) {
		req.Header.Set("User-Agent", client.Agent.headerValue())
	}
	resp, err := client.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}
