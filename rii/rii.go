package rii

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katlumen/opticalglass/catalog"
	"github.com/katlumen/opticalglass/medium"
)

// Sentinel errors for record parsing.
var (
	// ErrBadRecord indicates a document without a usable DATA list.
	ErrBadRecord = errors.New("rii: bad record")

	// ErrBadDataset indicates a dataset whose type or payload cannot be
	// parsed.
	ErrBadDataset = errors.New("rii: bad dataset")
)

// dataset is one entry of a record's DATA list.
type dataset struct {
	Type            string `yaml:"type"`
	Coefficients    string `yaml:"coefficients"`
	WavelengthRange string `yaml:"wavelength_range"`
	Data            string `yaml:"data"`
}

// document is the top-level RII YAML shape. REFERENCES and COMMENTS are
// free text and not retained past parsing.
type document struct {
	References string    `yaml:"REFERENCES"`
	Comments   string    `yaml:"COMMENTS"`
	Data       []dataset `yaml:"DATA"`
}

// parseFloats splits a whitespace-separated number list.
func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrBadDataset, f)
		}
		out[i] = v
	}

	return out, nil
}

// parseTable reads tabulated sample lines of cols columns each, the first
// column a micrometer wavelength converted to nanometers. Repeated
// wavelengths (RII tables sometimes duplicate interval edges) keep the
// first occurrence.
func parseTable(data string, cols int) ([][]float64, error) {
	out := make([][]float64, cols)
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		vals, err := parseFloats(line)
		if err != nil {
			return nil, err
		}
		if len(vals) < cols {
			return nil, fmt.Errorf("%w: table line %q has %d columns, want %d", ErrBadDataset, line, len(vals), cols)
		}
		wvNm := vals[0] * 1e3
		if n := len(out[0]); n > 0 && out[0][n-1] == wvNm {
			continue
		}
		out[0] = append(out[0], wvNm)
		for c := 1; c < cols; c++ {
			out[c] = append(out[c], vals[c])
		}
	}
	if len(out[0]) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrBadDataset)
	}

	return out, nil
}

// ParseRecord reduces an RII YAML document to a neutral catalog record.
// The first dataset selects the representation; a trailing "tabulated k"
// dataset attaches the extinction table.
//
// Errors:
//   - ErrBadRecord  — not YAML, or no DATA list.
//   - ErrBadDataset — unrecognized dataset type or unparseable payload.
func ParseRecord(data []byte, name, cat string) (catalog.Record, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return catalog.Record{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(doc.Data) == 0 {
		return catalog.Record{}, fmt.Errorf("%w: no DATA entries", ErrBadRecord)
	}

	rec := catalog.Record{Name: name, Catalog: cat}

	first := doc.Data[0]
	switch {
	case strings.HasPrefix(first.Type, "formula"):
		coefs, err := parseFloats(first.Coefficients)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("record %q: %w", name, err)
		}
		rng, err := parseFloats(first.WavelengthRange)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("record %q: %w", name, err)
		}
		if len(rng) != 2 {
			return catalog.Record{}, fmt.Errorf("%w: wavelength_range %q", ErrBadDataset, first.WavelengthRange)
		}
		rec.Formula = first.Type
		rec.Coefs = coefs
		rec.DomainMin, rec.DomainMax = rng[0], rng[1]
		rec.Units = "um"

	case first.Type == "tabulated n":
		t, err := parseTable(first.Data, 2)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("record %q: %w", name, err)
		}
		rec.WvlsNm, rec.Rndx = t[0], t[1]

	case first.Type == "tabulated nk":
		t, err := parseTable(first.Data, 3)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("record %q: %w", name, err)
		}
		rec.WvlsNm, rec.Rndx = t[0], t[1]
		rec.KWvlsNm, rec.Kvals = t[0], t[2]

	default:
		return catalog.Record{}, fmt.Errorf("%w: type %q", ErrBadDataset, first.Type)
	}

	// A second dataset is an extinction table; it overrides any k column
	// the first dataset carried.
	if len(doc.Data) > 1 {
		second := doc.Data[1]
		if !strings.HasPrefix(second.Type, "tabulated") {
			return catalog.Record{}, fmt.Errorf("%w: second dataset type %q", ErrBadDataset, second.Type)
		}
		t, err := parseTable(second.Data, 2)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("record %q: %w", name, err)
		}
		rec.KWvlsNm, rec.Kvals = t[0], t[1]
	}

	return rec, nil
}

// Medium parses an RII document and constructs its optical medium through
// the shared catalog factory.
func Medium(data []byte, name, cat string) (medium.Medium, error) {
	rec, err := ParseRecord(data, name, cat)
	if err != nil {
		return nil, err
	}

	return catalog.Medium(rec)
}

// NameFromPath derives (name, catalog) labels from an RII database path
// or URL, e.g. ".../database/data/main/ZnSe/Connolly.yml" becomes
// ("ZnSe [Connolly]", "rii-main"). The "glass" and "other" shelves use
// their next path element as the catalog.
func NameFromPath(path string) (name, cat string) {
	trimmed := strings.TrimSuffix(path, ".yml")
	if _, after, found := strings.Cut(trimmed, "database/data/"); found {
		trimmed = after
	}
	parts := strings.Split(trimmed, "/")

	cat = "rii-"
	if len(parts) > 2 && (parts[0] == "glass" || parts[0] == "other") {
		cat += parts[1]
		parts = parts[2:]
	} else {
		cat += parts[0]
		parts = parts[1:]
	}

	switch len(parts) {
	case 0:
		name = ""
	case 1:
		name = parts[0]
	case 2:
		name = fmt.Sprintf("%s [%s]", parts[0], parts[1])
	default:
		name = strings.Join(parts, "-")
	}

	return name, cat
}
