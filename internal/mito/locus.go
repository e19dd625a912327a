package mito

// Strand identifies the mtDNA strand a locus is transcribed from.
type Strand byte

const (
	// StrandHeavy is the guanine-rich heavy strand; its loci read in
	// reference orientation.
	StrandHeavy Strand = 'H'
	// StrandLight is the light strand; its loci read against the
	// reference, so tokens are complemented and coordinates renumbered.
	StrandLight Strand = 'L'
)

// LocusType classifies a locus record.
type LocusType string

const (
	LocusCoding    LocusType = "coding"
	LocusRRNA      LocusType = "rRNA"
	LocusTRNA      LocusType = "tRNA"
	LocusNoncoding LocusType = "noncoding"
)

// Locus is an annotated region of the reference genome.
type Locus struct {
	ID     int
	Name   string
	Start  int // genomic start, 1-based inclusive
	End    int // genomic end, 1-based inclusive
	Strand Strand
	Type   LocusType
}

// IsCoding reports whether the locus encodes a protein.
func (l Locus) IsCoding() bool { return l.Type == LocusCoding }

// ReferenceData is the engine's view of the static reference tables.
// Implementations live outside the core; see internal/refdata.
type ReferenceData interface {
	// Reference returns reference residues start..end, 1-based inclusive.
	Reference(start, end int) (string, error)
	// ReferenceLength returns the full extent of the genome reference.
	ReferenceLength() int
	// Locus returns the locus record for id.
	Locus(id int) (Locus, error)
	// Codon maps an RNA codon to its single-letter residue, or
	// TermResidue for a stop codon.
	Codon(codon string) (string, error)
	// Transcript returns the canonical transcript of a locus.
	Transcript(locusID int) (string, error)
	// Translation returns the canonical translation of a coding locus.
	Translation(locusID int) (string, error)
}

// TermResidue is the codon-table value for stop codons. Sequence
// strings render it as TermSymbol.
const TermResidue = "TERM"

// TermSymbol is the single-character rendering of a stop residue.
const TermSymbol = '*'
