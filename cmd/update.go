package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fondlista/funds"
	"github.com/fondlista/funds/morningstar"
	"github.com/google/subcommands"
)

type updateCmd struct {
	offline bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch fund data from the provider and rewrite the output document"
}
func (*updateCmd) Usage() string {
	return `fondsync update [-offline]

  Runs the whole pipeline once: queries the Morningstar screener for every
  configured search phrase, normalizes the hits, falls back to the curated
  tables when the live path comes up empty, sorts each market by fee, and
  overwrites the output document. Intended to be run on a recurring
  external schedule; a bare "fondsync" does the same.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the provider entirely and serve the curated tables.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The provider client is selected once, here; the pipeline itself never
	// asks whether the integration is available.
	var client morningstar.Client = morningstar.Disabled{}
	if cfg.Provider.IsEnabled() && !c.offline {
		client = morningstar.NewClient(morningstar.Options{
			BaseURL:  cfg.Provider.BaseURL,
			Language: cfg.Provider.Language,
			Currency: cfg.Provider.Currency,
			Timeout:  cfg.Provider.Timeout,
		})
	}

	fmt.Printf("Updating fund data at %s\n", time.Now().Format(time.RFC3339))

	sum, err := funds.Update(ctx, client, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s\n", cfg.Output)
	fmt.Printf("Global funds: %d (retail: %d, institutional: %d)\n",
		len(sum.Global), funds.Retail(sum.Global), funds.Institutional(sum.Global))
	fmt.Printf("Sweden funds: %d (retail: %d, institutional: %d)\n",
		len(sum.Sweden), funds.Retail(sum.Sweden), funds.Institutional(sum.Sweden))

	return subcommands.ExitSuccess
}
