package refdata

import "github.com/mitomaster/mitoseq/internal/mito"

// vertebrateMitochondrial is NCBI translation table 2 over the RNA
// alphabet. It differs from the standard code at four codons: AGA and
// AGG are stops, AUA is methionine, and UGA is tryptophan.
var vertebrateMitochondrial = map[string]string{
	"UUU": "F", "UUC": "F", "UUA": "L", "UUG": "L",
	"UCU": "S", "UCC": "S", "UCA": "S", "UCG": "S",
	"UAU": "Y", "UAC": "Y", "UAA": mito.TermResidue, "UAG": mito.TermResidue,
	"UGU": "C", "UGC": "C", "UGA": "W", "UGG": "W",

	"CUU": "L", "CUC": "L", "CUA": "L", "CUG": "L",
	"CCU": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"CAU": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"CGU": "R", "CGC": "R", "CGA": "R", "CGG": "R",

	"AUU": "I", "AUC": "I", "AUA": "M", "AUG": "M",
	"ACU": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"AAU": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"AGU": "S", "AGC": "S", "AGA": mito.TermResidue, "AGG": mito.TermResidue,

	"GUU": "V", "GUC": "V", "GUA": "V", "GUG": "V",
	"GCU": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"GAU": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"GGU": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// VertebrateMitochondrialCode returns a copy of the vertebrate
// mitochondrial codon table, the default for bundles that carry none.
func VertebrateMitochondrialCode() map[string]string {
	out := make(map[string]string, len(vertebrateMitochondrial))
	for k, v := range vertebrateMitochondrial {
		out[k] = v
	}
	return out
}
