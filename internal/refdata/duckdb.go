package refdata

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/mitomaster/mitoseq/internal/mito"
)

// Store persists a reference data set in a DuckDB database. A bundle is
// imported once; the engine then loads the tables into a Memory
// provider at startup.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path. Use an
// empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key VARCHAR PRIMARY KEY,
			value VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS reference (
			name VARCHAR,
			seq VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS loci (
			id INTEGER PRIMARY KEY,
			name VARCHAR,
			start_pos INTEGER,
			end_pos INTEGER,
			strand VARCHAR,
			type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS codons (
			codon VARCHAR PRIMARY KEY,
			residue VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS transcripts (
			locus_id INTEGER PRIMARY KEY,
			seq VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS translations (
			locus_id INTEGER PRIMARY KEY,
			seq VARCHAR
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces the store contents with the bundle's tables. The
// bundle is validated the same way Bundle.Provider validates it.
func (s *Store) Import(b *Bundle) error {
	// Fail before touching the store if the bundle is malformed.
	if _, err := b.Provider(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "reference", "loci", "codons", "transcripts", "translations"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('name', ?)`, b.Name); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO reference (name, seq) VALUES (?, ?)`, b.Name, b.Reference); err != nil {
		return fmt.Errorf("insert reference: %w", err)
	}

	for _, rec := range b.Loci {
		if _, err := tx.Exec(
			`INSERT INTO loci (id, name, start_pos, end_pos, strand, type) VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Name, rec.Start, rec.End, rec.Strand, rec.Type,
		); err != nil {
			return fmt.Errorf("insert locus %d: %w", rec.ID, err)
		}
	}

	codons := b.Codons
	if len(codons) == 0 {
		codons = VertebrateMitochondrialCode()
	}
	for codon, residue := range codons {
		if _, err := tx.Exec(`INSERT INTO codons (codon, residue) VALUES (?, ?)`, codon, residue); err != nil {
			return fmt.Errorf("insert codon %s: %w", codon, err)
		}
	}

	for locusID, seq := range b.Transcripts {
		if _, err := tx.Exec(`INSERT INTO transcripts (locus_id, seq) VALUES (?, ?)`, locusID, seq); err != nil {
			return fmt.Errorf("insert transcript for locus %d: %w", locusID, err)
		}
	}
	for locusID, seq := range b.Translations {
		if _, err := tx.Exec(`INSERT INTO translations (locus_id, seq) VALUES (?, ?)`, locusID, seq); err != nil {
			return fmt.Errorf("insert translation for locus %d: %w", locusID, err)
		}
	}

	return tx.Commit()
}

// Load reads the store back into an immutable in-memory provider.
func (s *Store) Load() (*Memory, error) {
	b := &Bundle{
		Codons:       map[string]string{},
		Transcripts:  map[int]string{},
		Translations: map[int]string{},
	}

	if err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'name'`).Scan(&b.Name); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load meta: %w", err)
	}
	if err := s.db.QueryRow(`SELECT seq FROM reference`).Scan(&b.Reference); err != nil {
		if err == sql.ErrNoRows {
			return nil, &mito.ConfigurationError{Msg: "store has no reference sequence"}
		}
		return nil, fmt.Errorf("load reference: %w", err)
	}

	rows, err := s.db.Query(`SELECT id, name, start_pos, end_pos, strand, type FROM loci`)
	if err != nil {
		return nil, fmt.Errorf("load loci: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec LocusRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Start, &rec.End, &rec.Strand, &rec.Type); err != nil {
			return nil, fmt.Errorf("scan locus: %w", err)
		}
		b.Loci = append(b.Loci, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load loci: %w", err)
	}

	if err := s.loadPairs(`SELECT codon, residue FROM codons`, func(k, v string) {
		b.Codons[k] = v
	}); err != nil {
		return nil, err
	}
	if err := s.loadSeqs(`SELECT locus_id, seq FROM transcripts`, b.Transcripts); err != nil {
		return nil, err
	}
	if err := s.loadSeqs(`SELECT locus_id, seq FROM translations`, b.Translations); err != nil {
		return nil, err
	}

	return b.Provider()
}

func (s *Store) loadPairs(query string, add func(k, v string)) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return fmt.Errorf("query pairs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return fmt.Errorf("scan pair: %w", err)
		}
		add(k, v)
	}
	return rows.Err()
}

func (s *Store) loadSeqs(query string, into map[int]string) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return fmt.Errorf("query sequences: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var seq string
		if err := rows.Scan(&id, &seq); err != nil {
			return fmt.Errorf("scan sequence: %w", err)
		}
		into[id] = seq
	}
	return rows.Err()
}
