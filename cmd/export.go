package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "dump the whole khata as JSON" }
func (*exportCmd) Usage() string {
	return `export [-q <jsonpath>]

  Dumps the whole state (customers, notes, settings) as one JSON document
  on standard output, for backup or scripting. The optional JSONPath query
  selects a part of it, e.g. -q "$.customers[*].name".
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to select a part of the document")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()
	snapshot := book.Snapshot()

	var out any = snapshot
	if c.query != "" {
		result, err := snapshot.Query(c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		out = result
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
