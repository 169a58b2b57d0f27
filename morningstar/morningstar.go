// Package morningstar accesses the Morningstar fund screener API.
//
// The screener exposes two operations: a text search over a fund universe,
// and a per-security snapshot with fees, trailing returns and the risk
// rating. Both may fail per call; callers are expected to log and skip.
//
// The Client interface has two implementations selected once at process
// start: the live Screener, and Disabled which answers every query with an
// empty result. Disabled stands in when the integration is turned off so
// the pipeline downstream sees "no data" instead of an error.
package morningstar

import "context"

// Client is the query contract against the fund-data service.
type Client interface {
	// Search returns the screener hits for a free-text term within a universe.
	Search(ctx context.Context, term, universe string, pageSize int) ([]SearchResult, error)
	// Details returns the snapshot for one security within a universe.
	Details(ctx context.Context, secID, universe string) (*Detail, error)
}

// SearchResult is one row of a screener search response.
type SearchResult struct {
	SecID      string  `json:"SecId"`
	Name       string  `json:"Name"`
	ISIN       string  `json:"Isin"`
	ClosePrice float64 `json:"ClosePrice"`
	Currency   string  `json:"PriceCurrency"`
}

// Detail is the snapshot of a single fund. Pointer fields are nil when the
// provider has no value for them.
type Detail struct {
	SecID         string
	Name          string
	ISIN          string
	Benchmark     string
	OngoingCharge *float64 // annual fee, in percent
	Return1Y      *float64 // trailing 12 month return, in percent
	Return5Y      *float64 // trailing 60 month return, in percent
	RiskRating    *float64 // collected SRRI rank
}

// Disabled is the no-op Client used when the provider integration is
// unavailable: every call succeeds with an empty result.
type Disabled struct{}

func (Disabled) Search(context.Context, string, string, int) ([]SearchResult, error) {
	return nil, nil
}

func (Disabled) Details(context.Context, string, string) (*Detail, error) {
	return nil, nil
}
