package funds

import (
	"context"
	"fmt"

	"github.com/fondlista/funds/morningstar"
)

// Summary reports what one update run produced.
type Summary struct {
	Global  []Record
	Sweden  []Record
	Curated bool // both markets served from the curated tables
}

// Retail counts the non-institutional records in a market list.
func Retail(records []Record) int {
	n := 0
	for _, r := range records {
		if !r.Institutional {
			n++
		}
	}
	return n
}

// Institutional counts the institutional records in a market list.
func Institutional(records []Record) int {
	return len(records) - Retail(records)
}

// Update runs the whole pipeline once: fetch both markets, fall back to the
// curated tables when the live path comes up empty, sort by fee, and
// overwrite the output document.
//
// The fallback is all-or-nothing: one empty market switches BOTH markets to
// curated data, keeping the document's provenance uniform.
//
// Provider failures degrade to curated output; only a write failure is
// returned as an error.
func Update(ctx context.Context, client morningstar.Client, cfg *Config) (*Summary, error) {
	byKey := make(map[string][]Record, len(cfg.Markets))
	for _, market := range cfg.Markets {
		byKey[market.Key] = FetchMarket(ctx, client, market, cfg.Provider.PageSize)
	}

	global, sweden := byKey["global"], byKey["sweden"]

	curated := len(global) == 0 || len(sweden) == 0
	if curated {
		fmt.Println("Using curated fund data")
		global, sweden = Curated()
	}

	SortByFee(global)
	SortByFee(sweden)

	if err := WriteDocument(cfg.Output, NewDocument(global, sweden)); err != nil {
		return nil, err
	}

	return &Summary{Global: global, Sweden: sweden, Curated: curated}, nil
}
