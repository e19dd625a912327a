// Package variantfile reads variant-list files and hands the engine
// plain records: a sample name, a variant map, and an optional explicit
// window. The core never parses file text itself.
//
// The format is line-oriented:
//
//	## source=clinic-export-2024      file-level metadata
//	# plain comment
//	SAMPLE-1	3460:A;11778:A
//	SAMPLE-2	8993.01:CC;3106:---	577	16023
//
// Each record line holds a name, a semicolon-separated variant list
// (position:token, with the fractional form marking insertions and gap
// runs marking deletions), and optionally a window start and end.
package variantfile

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitomaster/mitoseq/internal/mito"
)

// Record is the plain form handed to the engine.
type Record struct {
	Name     string
	Variants map[mito.Position]string
	Start    int // 0 when the record has no explicit window
	End      int
	Meta     map[string]string
}

// Parser reads records from a variant-list file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	meta       map[string]string
}

// NewParser opens a variant-list file. Plain and gzipped files are both
// supported; "-" reads from stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variant file: %w", err)
	}

	p := &Parser{file: file, meta: make(map[string]string)}

	// Sniff for the gzip magic number.
	magic := make([]byte, 2)
	if _, err := io.ReadFull(file, magic); err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		file.Close()
		return nil, fmt.Errorf("read variant file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek variant file: %w", err)
	}

	if magic[0] == 0x1f && magic[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader wraps an io.Reader (e.g. stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
		meta:   make(map[string]string),
	}
}

// Meta returns the file-level metadata seen so far.
func (p *Parser) Meta() map[string]string { return p.meta }

// Next returns the next record, or nil at end of input.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read variant file: %w", err)
		}
		atEOF := err == io.EOF
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		switch {
		case line == "":
			// skip
		case strings.HasPrefix(line, "##"):
			if key, value, ok := strings.Cut(strings.TrimPrefix(line, "##"), "="); ok {
				p.meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		case strings.HasPrefix(line, "#"):
			// comment
		default:
			rec, err := p.parseRecord(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", p.lineNumber, err)
			}
			return rec, nil
		}

		if atEOF {
			return nil, nil
		}
	}
}

func (p *Parser) parseRecord(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 && len(fields) != 4 {
		return nil, fmt.Errorf("expected 2 or 4 tab-separated fields, got %d", len(fields))
	}

	variants, err := ParseVariants(fields[1])
	if err != nil {
		return nil, err
	}

	// Snapshot the metadata: `##` lines appearing later in the file must
	// not retroactively change records already handed out.
	meta := make(map[string]string, len(p.meta))
	for k, v := range p.meta {
		meta[k] = v
	}

	rec := &Record{
		Name:     fields[0],
		Variants: variants,
		Meta:     meta,
	}

	if len(fields) == 4 {
		start, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("malformed window start %q", fields[2])
		}
		end, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("malformed window end %q", fields[3])
		}
		rec.Start, rec.End = start, end
	}

	return rec, nil
}

// Close releases the underlying file handles.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseVariants parses a semicolon-separated variant list such as
// "3460:A;8993.01:CC;3106:---". The entry "." denotes an empty list.
func ParseVariants(s string) (map[mito.Position]string, error) {
	out := make(map[mito.Position]string)
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return out, nil
	}

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		pos, token, err := ParseVariant(entry)
		if err != nil {
			return nil, err
		}
		if _, dup := out[pos]; dup {
			return nil, fmt.Errorf("duplicate variant position %s", pos)
		}
		out[pos] = token
	}
	return out, nil
}

// ParseVariant parses a single "position:token" entry.
func ParseVariant(entry string) (mito.Position, string, error) {
	posStr, token, ok := strings.Cut(entry, ":")
	if !ok || token == "" {
		return mito.Position{}, "", fmt.Errorf("malformed variant %q (expected position:token)", entry)
	}
	pos, err := mito.ParsePosition(strings.TrimSpace(posStr))
	if err != nil {
		return mito.Position{}, "", err
	}
	return pos, strings.ToUpper(strings.TrimSpace(token)), nil
}
