package funds

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fondlista/funds/date"
	"github.com/fondlista/funds/morningstar"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "funds.json")
	return cfg
}

// curatedSorted is what the document must hold after a full fallback.
func curatedSorted() (global, sweden []Record) {
	global, sweden = Curated()
	SortByFee(global)
	SortByFee(sweden)
	return global, sweden
}

func TestUpdate_ProviderDownServesCurated(t *testing.T) {
	cfg := testConfig(t)

	sum, err := Update(context.Background(), failingClient, cfg)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !sum.Curated {
		t.Error("summary does not report the curated fallback")
	}

	wantGlobal, wantSweden := curatedSorted()
	if !reflect.DeepEqual(sum.Global, wantGlobal) {
		t.Errorf("global list differs from the sorted curated table")
	}
	if !reflect.DeepEqual(sum.Sweden, wantSweden) {
		t.Errorf("sweden list differs from the sorted curated table")
	}

	doc, err := ReadDocument(cfg.Output)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if !reflect.DeepEqual(doc.Global, wantGlobal) || !reflect.DeepEqual(doc.Sweden, wantSweden) {
		t.Error("written document differs from the curated dataset")
	}
	if doc.LastUpdated != date.Today() {
		t.Errorf("lastUpdated = %s, want %s", doc.LastUpdated, date.Today())
	}
}

func TestUpdate_DisabledProviderServesCurated(t *testing.T) {
	cfg := testConfig(t)

	sum, err := Update(context.Background(), morningstar.Disabled{}, cfg)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !sum.Curated {
		t.Error("disabled provider must fall back to curated data")
	}
}

func TestUpdate_OneEmptyMarketSwitchesBoth(t *testing.T) {
	// The live path only finds swedish funds; provenance stays uniform, so
	// BOTH markets come from the curated tables.
	client := stubClient{
		search: func(term, universe string) ([]morningstar.SearchResult, error) {
			if universe == DefaultSwedenUniverse {
				return []morningstar.SearchResult{{SecID: "F0001", Name: "Acme Sverige Index"}}, nil
			}
			return nil, nil
		},
		details: func(secID string) (*morningstar.Detail, error) {
			return &morningstar.Detail{SecID: secID, Name: "Acme Sverige Index", OngoingCharge: fptr(0.3)}, nil
		},
	}

	cfg := testConfig(t)
	sum, err := Update(context.Background(), client, cfg)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !sum.Curated {
		t.Fatal("one empty market must switch both to curated data")
	}

	wantGlobal, wantSweden := curatedSorted()
	if !reflect.DeepEqual(sum.Global, wantGlobal) || !reflect.DeepEqual(sum.Sweden, wantSweden) {
		t.Error("output differs from the curated dataset")
	}
}

func TestUpdate_LivePath(t *testing.T) {
	byUniverse := map[string]morningstar.SearchResult{
		DefaultGlobalUniverse: {SecID: "G1", Name: "Acme World Index Fund"},
		DefaultSwedenUniverse: {SecID: "S1", Name: "Acme Sverige Index"},
	}
	details := map[string]*morningstar.Detail{
		"G1": {SecID: "G1", Name: "Acme World Index Fund", Benchmark: "MSCI World", OngoingCharge: fptr(0.12), RiskRating: fptr(3)},
		"S1": {SecID: "S1", Name: "Acme Sverige Index", Benchmark: "SIX Return Index", OngoingCharge: fptr(0.2), RiskRating: fptr(5)},
	}
	client := stubClient{
		search: func(term, universe string) ([]morningstar.SearchResult, error) {
			return []morningstar.SearchResult{byUniverse[universe]}, nil
		},
		details: func(secID string) (*morningstar.Detail, error) {
			return details[secID], nil
		},
	}

	cfg := testConfig(t)
	sum, err := Update(context.Background(), client, cfg)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sum.Curated {
		t.Fatal("live data must not trigger the curated fallback")
	}
	if len(sum.Global) != 1 || sum.Global[0].Name != "Acme World Index Fund" {
		t.Errorf("global = %+v, want the live record", sum.Global)
	}
	if len(sum.Sweden) != 1 || sum.Sweden[0].Risk != RiskHigh {
		t.Errorf("sweden = %+v, want the live record with high risk", sum.Sweden)
	}
}

func TestUpdate_UnwritableOutputIsFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "missing", "funds.json")

	if _, err := Update(context.Background(), failingClient, cfg); err == nil {
		t.Fatal("want error for unwritable output, got nil")
	}
}

func TestCounts(t *testing.T) {
	global, _ := Curated()
	if got, want := Retail(global), 8; got != want {
		t.Errorf("Retail = %d, want %d", got, want)
	}
	if got, want := Institutional(global), 6; got != want {
		t.Errorf("Institutional = %d, want %d", got, want)
	}
}
