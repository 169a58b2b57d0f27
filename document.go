package funds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fondlista/funds/date"
)

// Sources is the fixed attribution list carried in every document.
var Sources = []string{
	"morningstar.se",
	"avanza.se",
	"nordnet.se",
	"fondmarknaden.se",
}

// Disclaimer is the fixed disclaimer carried in every document.
const Disclaimer = "Inkluderar fonder för både privatpersoner och institutionella investerare. Historisk avkastning är ingen garanti för framtida resultat."

// Document is the output consumed by the display layer. Field order is the
// wire order.
type Document struct {
	Global      []Record  `json:"global"`
	Sweden      []Record  `json:"sweden"`
	LastUpdated date.Date `json:"lastUpdated"`
	Sources     []string  `json:"sources"`
	Disclaimer  string    `json:"disclaimer"`
}

// NewDocument assembles a document for the given market lists, stamped with
// today's date.
func NewDocument(global, sweden []Record) *Document {
	return &Document{
		Global:      global,
		Sweden:      sweden,
		LastUpdated: date.Today(),
		Sources:     Sources,
		Disclaimer:  Disclaimer,
	}
}

// WriteDocument overwrites path with the document as indented UTF-8 JSON,
// non-ASCII characters kept literal. The destination directory must already
// exist: an unwritable path is the pipeline's only fatal error, and it is
// the caller's to propagate.
func WriteDocument(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("persist error: cannot encode %q: %w", path, err)
	}
	return f.Close()
}

// ReadDocument loads a previously written document, for display commands.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read document %q: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse error %q: %w", path, err)
	}
	return &doc, nil
}
