package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/fondlista/funds"
	"github.com/fondlista/funds/morningstar"
	"github.com/google/subcommands"
)

// searchCmd is a debug query against the live provider, independent of the
// pipeline: it shows what a search phrase actually returns.
type searchCmd struct {
	market string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches for funds on the provider" }
func (*searchCmd) Usage() string {
	return `fondsync search [-m <market>] <search term>

  Queries the Morningstar screener with one phrase and prints the hits.
  Useful for tuning the configured search phrases.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "m", "global", "Market universe to search: global or sweden.")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var market *funds.MarketConfig
	for i := range cfg.Markets {
		if cfg.Markets[i].Key == c.market {
			market = &cfg.Markets[i]
		}
	}
	if market == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown market %q\n", c.market)
		return subcommands.ExitUsageError
	}

	client := morningstar.NewClient(morningstar.Options{
		BaseURL:  cfg.Provider.BaseURL,
		Language: cfg.Provider.Language,
		Currency: cfg.Provider.Currency,
		Timeout:  cfg.Provider.Timeout,
	})

	results, err := client.Search(ctx, term, market.Universe, cfg.Provider.PageSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching funds: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", term)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), term)
	for _, item := range results {
		fmt.Printf("➡️   Name  : %s (%s)\n", item.Name, item.SecID)
		if item.ISIN != "" {
			fmt.Printf("    ISIN   : %s\n", item.ISIN)
		}
		if item.Currency != "" && item.ClosePrice != 0 {
			close := money.NewFromFloat(item.ClosePrice, item.Currency)
			fmt.Printf("    Close  : %s\n", close.Display())
		}
		fmt.Println()
	}

	return subcommands.ExitSuccess
}
