package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/geoknoesis/sparql-go/sparql"
)

var (
	endpointURLs []string
	useJSON      bool
	rowLimit     int
	agentName    string
	agentContact string
)

// queryCmd runs a SELECT or ASK query against one or more endpoints.
// Multiple endpoints are queried concurrently.
var queryCmd = &cobra.Command{
	Use:   "query [flags] QUERY",
	Short: "Run a SPARQL query against one or more endpoints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(endpointURLs) == 0 {
			return fmt.Errorf("at least one --endpoint is required")
		}

		kind, normalized, err := sparql.ClassifyQuery(args[0])
		if err != nil {
			return err
		}

		client := &sparql.Client{}
		if agentName != "" {
			client.Agent = sparql.UserAgent{Name: agentName, Version: sparql.Version, Contact: agentContact}
		}

		group, ctx := errgroup.WithContext(cmd.Context())
		for _, serviceURL := range endpointURLs {
			endpoint := sparql.NewEndpoint(client, serviceURL)
			group.Go(func() error {
				return runQuery(ctx, endpoint, kind, normalized)
			})
		}
		return group.Wait()
	},
}

func init() {
	queryCmd.Flags().StringArrayVarP(&endpointURLs, "endpoint", "e", nil, "endpoint URL (repeatable)")
	queryCmd.Flags().BoolVar(&useJSON, "json", false, "use the buffered JSON results encoding for SELECT")
	queryCmd.Flags().IntVar(&rowLimit, "limit", 0, "stop after N rows (0 = no limit)")
	queryCmd.Flags().StringVar(&agentName, "agent", "", "application name for the User-Agent header")
	queryCmd.Flags().StringVar(&agentContact, "contact", "", "contact info for the User-Agent header")
}

func runQuery(ctx context.Context, endpoint *sparql.Endpoint, kind sparql.QueryKind, normalized string) error {
	switch kind {
	case sparql.QueryAsk:
		query, err := sparql.ParseAskQuery(normalized)
		if err != nil {
			return err
		}
		result, err := endpoint.Ask(ctx, query)
		if err != nil {
			return fmt.Errorf("%s: %w", endpoint.URL, err)
		}
		pterm.Printf("%s: %t\n", endpoint.URL, result)
		return nil
	case sparql.QuerySelect:
		query, err := sparql.ParseSelectQuery(normalized)
		if err != nil {
			return err
		}
		if useJSON {
			vars, rows, err := endpoint.SelectJSON(ctx, query)
			if err != nil {
				return fmt.Errorf("%s: %w", endpoint.URL, err)
			}
			return renderRows(endpoint.URL, vars, rows)
		}
		return streamSelect(ctx, endpoint, query)
	default:
		return fmt.Errorf("%s queries return graph-shaped results and are not supported", kind)
	}
}

func streamSelect(ctx context.Context, endpoint *sparql.Endpoint, query sparql.SelectQuery) error {
	opts := sparql.DefaultDecodeOptions()
	opts.Context = ctx
	dec, err := endpoint.Select(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint.URL, err)
	}
	defer dec.Close()

	var rows []sparql.Row
	for rowLimit <= 0 || len(rows) < rowLimit {
		row, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", endpoint.URL, err)
		}
		rows = append(rows, row)
	}
	return renderRows(endpoint.URL, dec.Vars(), rows)
}

func renderRows(serviceURL string, vars []string, rows []sparql.Row) error {
	pterm.DefaultSection.Println(serviceURL)

	data := pterm.TableData{vars}
	for _, row := range rows {
		record := make([]string, len(vars))
		for i, name := range vars {
			if term, ok := row[name]; ok {
				record[i] = term.String()
			}
		}
		data = append(data, record)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Printf("%d row(s)\n", len(rows))
	return nil
}
