package funds

import (
	"context"
	"log"
	"strings"

	"github.com/fondlista/funds/morningstar"
)

// Normalize maps a provider snapshot onto the canonical record shape.
// It returns false for funds that are not index funds: the name must
// mention "index" or the Swedish "passiv", case-insensitively.
func Normalize(d *morningstar.Detail, fallbackName string) (Record, bool) {
	name := d.Name
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = "Unknown"
	}

	lower := strings.ToLower(name)
	if !strings.Contains(lower, "index") && !strings.Contains(lower, "passiv") {
		return Record{}, false
	}

	index := d.Benchmark
	if index == "" {
		index = NA
	}

	return Record{
		Name:          name,
		Index:         index,
		Fee:           FormatFee(d.OngoingCharge),
		Return1Y:      FormatReturn(d.Return1Y),
		Return5Y:      FormatReturn(d.Return5Y),
		Risk:          RiskFromRating(d.RiskRating),
		ISIN:          d.ISIN,
		Institutional: IsInstitutional(name),
		ProviderID:    d.SecID,
	}, true
}

// appendUnique adds r unless a record with the identical name is already in
// the list.
func appendUnique(records []Record, r Record) []Record {
	for _, existing := range records {
		if existing.Name == r.Name {
			return records
		}
	}
	return append(records, r)
}

// FetchMarket runs every search phrase of one market against the provider
// and accumulates the normalized records. A failing phrase or record is
// logged and skipped; the worst outcome is an empty list, never an error.
func FetchMarket(ctx context.Context, client morningstar.Client, market MarketConfig, pageSize int) []Record {
	var records []Record
	for _, phrase := range market.Phrases {
		hits, err := client.Search(ctx, phrase, market.Universe, pageSize)
		if err != nil {
			log.Printf("error searching for %q in %s: %v", phrase, market.Key, err)
			continue
		}
		for _, hit := range hits {
			detail, err := client.Details(ctx, hit.SecID, market.Universe)
			if err != nil {
				log.Printf("error processing fund %q: %v", hit.Name, err)
				continue
			}
			record, ok := Normalize(detail, hit.Name)
			if !ok {
				continue
			}
			records = appendUnique(records, record)
		}
	}
	return records
}
