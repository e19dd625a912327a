// Package refdata supplies the static mitochondrial reference tables
// behind the mito.ReferenceData interface: the genome reference string
// (the rCRS for human data sets), the locus table, the codon table, and
// per-locus canonical transcripts and translations.
//
// Data sets travel as YAML bundles. A bundle can back an in-memory
// provider directly, or be imported once into a DuckDB store and loaded
// from there.
package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitomaster/mitoseq/internal/mito"
)

// Bundle is the on-disk YAML packaging of a reference data set.
type Bundle struct {
	Name         string            `yaml:"name"`
	Reference    string            `yaml:"reference"`
	Loci         []LocusRecord     `yaml:"loci"`
	Codons       map[string]string `yaml:"codons,omitempty"`
	Transcripts  map[int]string    `yaml:"transcripts,omitempty"`
	Translations map[int]string    `yaml:"translations,omitempty"`
}

// LocusRecord is the YAML form of a locus table row.
type LocusRecord struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
	Strand string `yaml:"strand"`
	Type   string `yaml:"type"`
}

// LoadBundle reads and parses a YAML reference bundle.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	return ParseBundle(data)
}

// ParseBundle parses YAML bundle bytes.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	return &b, nil
}

// Provider builds an in-memory provider from the bundle. A bundle with
// no codon table gets the vertebrate mitochondrial code.
func (b *Bundle) Provider() (*Memory, error) {
	if b.Reference == "" {
		return nil, &mito.ConfigurationError{Msg: "bundle has no reference sequence"}
	}

	loci := make(map[int]mito.Locus, len(b.Loci))
	for _, rec := range b.Loci {
		locus, err := rec.locus()
		if err != nil {
			return nil, err
		}
		if _, dup := loci[locus.ID]; dup {
			return nil, &mito.ConfigurationError{Msg: fmt.Sprintf("duplicate locus id %d", locus.ID)}
		}
		loci[locus.ID] = locus
	}

	codons := b.Codons
	if len(codons) == 0 {
		codons = VertebrateMitochondrialCode()
	}

	return &Memory{
		name:         b.Name,
		reference:    b.Reference,
		loci:         loci,
		codons:       codons,
		transcripts:  copyIntMap(b.Transcripts),
		translations: copyIntMap(b.Translations),
	}, nil
}

func (rec LocusRecord) locus() (mito.Locus, error) {
	var strand mito.Strand
	switch rec.Strand {
	case "H":
		strand = mito.StrandHeavy
	case "L":
		strand = mito.StrandLight
	default:
		return mito.Locus{}, &mito.ConfigurationError{Msg: fmt.Sprintf("locus %s (%d): invalid strand %q", rec.Name, rec.ID, rec.Strand)}
	}

	var typ mito.LocusType
	switch mito.LocusType(rec.Type) {
	case mito.LocusCoding, mito.LocusRRNA, mito.LocusTRNA, mito.LocusNoncoding:
		typ = mito.LocusType(rec.Type)
	default:
		return mito.Locus{}, &mito.ConfigurationError{Msg: fmt.Sprintf("locus %s (%d): invalid type %q", rec.Name, rec.ID, rec.Type)}
	}

	return mito.Locus{
		ID:     rec.ID,
		Name:   rec.Name,
		Start:  rec.Start,
		End:    rec.End,
		Strand: strand,
		Type:   typ,
	}, nil
}

func copyIntMap(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
