package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fondlista/funds"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the current fund dataset" }
func (*showCmd) Usage() string {
	return `fondsync show

  Renders the current output document as a table per market. Reads the
  document written by the last update; does not query the provider.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	doc, err := funds.ReadDocument(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (run 'fondsync update' first)\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(documentMarkdown(doc))
	return subcommands.ExitSuccess
}

// documentMarkdown renders the whole document as markdown.
func documentMarkdown(doc *funds.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Indexfonder %s\n\n", doc.LastUpdated)
	b.WriteString(marketTable("Globala fonder", doc.Global))
	b.WriteString(marketTable("Svenska fonder", doc.Sweden))
	fmt.Fprintf(&b, "Källor: %s\n\n", strings.Join(doc.Sources, ", "))
	fmt.Fprintf(&b, "*%s*\n", doc.Disclaimer)
	return b.String()
}

// marketTable renders one market list as a markdown table, cheapest first
// as stored. Institutional share classes are marked.
func marketTable(title string, records []funds.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	b.WriteString("| Fond | Index | Avgift | 1 år | 5 år | Risk |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range records {
		name := r.Name
		if r.Institutional {
			name += " (inst)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			name, r.Index, r.Fee, r.Return1Y, r.Return5Y, r.Risk)
	}
	b.WriteString("\n")
	return b.String()
}
