package funds

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/fondlista/funds/morningstar"
)

// stubClient scripts the provider for pipeline tests.
type stubClient struct {
	search  func(term, universe string) ([]morningstar.SearchResult, error)
	details func(secID string) (*morningstar.Detail, error)
}

func (s stubClient) Search(_ context.Context, term, universe string, _ int) ([]morningstar.SearchResult, error) {
	return s.search(term, universe)
}

func (s stubClient) Details(_ context.Context, secID, _ string) (*morningstar.Detail, error) {
	return s.details(secID)
}

// failingClient errors on every call.
var failingClient = stubClient{
	search: func(string, string) ([]morningstar.SearchResult, error) {
		return nil, errors.New("connection refused")
	},
	details: func(string) (*morningstar.Detail, error) {
		return nil, errors.New("connection refused")
	},
}

func TestNormalize(t *testing.T) {
	detail := &morningstar.Detail{
		SecID:         "F0001",
		Name:          "Acme World Index Fund",
		Benchmark:     "MSCI World",
		OngoingCharge: fptr(0.12),
		Return1Y:      fptr(18.4),
		RiskRating:    fptr(3),
	}

	got, ok := Normalize(detail, "")
	if !ok {
		t.Fatal("Normalize rejected an index fund")
	}
	want := Record{
		Name:       "Acme World Index Fund",
		Index:      "MSCI World",
		Fee:        "0.12%",
		Return1Y:   "+18%",
		Return5Y:   NA,
		Risk:       RiskMedium,
		ProviderID: "F0001",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalize_IndexFilter(t *testing.T) {
	tests := []struct {
		name string
		keep bool
	}{
		{name: "Acme World Index Fund", keep: true},
		{name: "ACME WORLD INDEX", keep: true},
		{name: "Nordea Global Passiv", keep: true},
		{name: "Acme Aktiv Global", keep: false},
		{name: "Acme Småbolag", keep: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Normalize(&morningstar.Detail{Name: tt.name}, "")
			if ok != tt.keep {
				t.Errorf("Normalize(%q) kept = %v, want %v", tt.name, ok, tt.keep)
			}
		})
	}
}

func TestNormalize_FallbackName(t *testing.T) {
	got, ok := Normalize(&morningstar.Detail{}, "Acme Sverige Index")
	if !ok {
		t.Fatal("Normalize rejected record named by the search hit")
	}
	if got.Name != "Acme Sverige Index" {
		t.Errorf("Name = %q, want the search hit name", got.Name)
	}
}

func TestNormalize_MissingFields(t *testing.T) {
	got, ok := Normalize(&morningstar.Detail{Name: "Bare Index Fund"}, "")
	if !ok {
		t.Fatal("Normalize rejected an index fund")
	}
	if got.Index != NA || got.Fee != NA || got.Return1Y != NA || got.Return5Y != NA {
		t.Errorf("missing fields should all be %q, got %+v", NA, got)
	}
	if got.Risk != RiskMedium {
		t.Errorf("Risk = %q, want %q for an absent rating", got.Risk, RiskMedium)
	}
}

func TestFetchMarket_Dedup(t *testing.T) {
	// Two phrases hit the same fund; it must appear once.
	client := stubClient{
		search: func(term, universe string) ([]morningstar.SearchResult, error) {
			return []morningstar.SearchResult{{SecID: "F0001", Name: "Acme World Index Fund"}}, nil
		},
		details: func(secID string) (*morningstar.Detail, error) {
			return &morningstar.Detail{SecID: secID, Name: "Acme World Index Fund"}, nil
		},
	}

	market := MarketConfig{Key: "global", Universe: "FOGBR$$ALL", Phrases: []string{"Global Index", "World Index"}}
	records := FetchMarket(context.Background(), client, market, 50)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 after dedup", len(records))
	}
}

func TestFetchMarket_SkipsFailures(t *testing.T) {
	// The first phrase fails to search, one record fails its detail fetch;
	// the rest of the market must still come through.
	client := stubClient{
		search: func(term, universe string) ([]morningstar.SearchResult, error) {
			if term == "Global Index" {
				return nil, errors.New("timeout")
			}
			return []morningstar.SearchResult{
				{SecID: "F0001", Name: "Acme World Index Fund"},
				{SecID: "F0002", Name: "Broken Index Fund"},
			}, nil
		},
		details: func(secID string) (*morningstar.Detail, error) {
			if secID == "F0002" {
				return nil, errors.New("timeout")
			}
			return &morningstar.Detail{SecID: secID, Name: "Acme World Index Fund"}, nil
		},
	}

	market := MarketConfig{Key: "global", Universe: "FOGBR$$ALL", Phrases: []string{"Global Index", "World Index"}}
	records := FetchMarket(context.Background(), client, market, 50)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Acme World Index Fund" {
		t.Errorf("Name = %q, want the surviving record", records[0].Name)
	}
}

func TestFetchMarket_DisabledProvider(t *testing.T) {
	market := MarketConfig{Key: "sweden", Universe: "FOSWE$$ALL", Phrases: []string{"OMX"}}
	records := FetchMarket(context.Background(), morningstar.Disabled{}, market, 50)
	if len(records) != 0 {
		t.Errorf("got %d records from the disabled provider, want 0", len(records))
	}
}
