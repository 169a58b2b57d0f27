package morningstar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Options configures the live screener client.
type Options struct {
	BaseURL  string        // screener API root, without trailing slash
	Language string        // languageId query parameter, e.g. "sv-SE"
	Currency string        // currencyId query parameter, e.g. "SEK"
	Timeout  time.Duration // per-query timeout
}

// Screener is the live Client backed by the Morningstar screener API.
type Screener struct {
	opts Options
	http *http.Client
}

// NewClient returns a live client for the given options.
func NewClient(opts Options) *Screener {
	return &Screener{opts: opts, http: daily(opts.Timeout)}
}

// Search queries the screener for funds matching term within a universe.
//
//	{
//	  "total": 2,
//	  "rows": [
//	    {
//	      "SecId": "F00000XYZ1",
//	      "Name": "Acme World Index Fund",
//	      "Isin": "SE0000000001",
//	      "ClosePrice": 231.4,
//	      "PriceCurrency": "SEK"
//	    },
func (s *Screener) Search(ctx context.Context, term, universe string, pageSize int) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("sortOrder", "LegalName asc")
	q.Set("outputType", "json")
	q.Set("version", "1")
	q.Set("languageId", s.opts.Language)
	q.Set("currencyId", s.opts.Currency)
	q.Set("universeIds", universe)
	q.Set("securityDataPoints", "SecId|Name|Isin|ClosePrice|PriceCurrency")
	q.Set("term", term)
	addr := s.opts.BaseURL + "/security/screener?" + q.Encode()

	// that's the payload
	var content struct {
		Rows []SearchResult `json:"rows"`
	}
	if err := jget(ctx, s.http, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot search %q in %q: %w", term, universe, err)
	}
	return content.Rows, nil
}

/*
	[
	  {
	    "Id": "F00000XYZ1",
	    "Name": "Acme World Index Fund",
	    "Isin": "SE0000000001",
	    "OngoingCharge": 0.12,
	    "CollectedSRRI": { "Date": "2026-07-31", "Rank": 3 },
	    "Benchmark": [ { "Id": "XIUSA04G92", "Name": "MSCI World" } ],
	    "TrailingPerformance": [
	      {
	        "Type": "DayEnd",
	        "Return": [
	          { "TimePeriod": "M12", "Value": 18.4 },
	          { "TimePeriod": "M60", "Value": 84.1 }
	        ]
	      }
	    ]
	  }
	]
*/

// Details fetches the snapshot for a single security. The payload nesting is
// irregular, so values are extracted path by path and missing ones are left
// nil rather than failing the whole record.
func (s *Screener) Details(ctx context.Context, secID, universe string) (*Detail, error) {
	q := url.Values{}
	q.Set("viewId", "snapshot")
	q.Set("languageId", s.opts.Language)
	q.Set("currencyId", s.opts.Currency)
	q.Set("universeId", universe)
	q.Set("responseViewFormat", "json")
	addr := s.opts.BaseURL + "/security_details/" + url.PathEscape(secID) + "?" + q.Encode()

	var jobj any
	if err := jget(ctx, s.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch details for %q: %w", secID, err)
	}

	d := &Detail{SecID: secID}
	d.Name, _ = jstring(jobj, "$[0].Name")
	d.ISIN, _ = jstring(jobj, "$[0].Isin")
	d.Benchmark, _ = jstring(jobj, "$[0].Benchmark[0].Name")
	if v, ok := jfloat(jobj, "$[0].OngoingCharge"); ok {
		d.OngoingCharge = &v
	}
	if v, ok := jfloat(jobj, "$[0].CollectedSRRI.Rank"); ok {
		d.RiskRating = &v
	}

	// Trailing returns come as a list of {TimePeriod, Value} rows in no
	// guaranteed order, and rows without a Value do happen.
	rows, err := jsonpath.Get("$[0].TrailingPerformance[0].Return", jobj)
	if err != nil {
		return d, nil
	}
	list, ok := rows.([]any)
	if !ok {
		return d, nil
	}
	for _, row := range list {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		period, _ := m["TimePeriod"].(string)
		value, ok := m["Value"].(float64)
		if !ok {
			continue
		}
		v := value
		switch period {
		case "M12":
			d.Return1Y = &v
		case "M60":
			d.Return5Y = &v
		}
	}
	return d, nil
}

// jstring extracts a string at path, tolerating a single-element list answer.
func jstring(jobj any, path string) (string, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", false
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	return s, ok
}

// jfloat extracts a number at path, tolerating a single-element list answer.
func jfloat(jobj any, path string) (float64, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, false
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, ok := jval.(float64)
	return v, ok
}
