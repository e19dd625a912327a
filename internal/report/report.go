// Package report reconstructs sequences for batches of variant records
// and writes them out. Concurrency lives here, outside the engine:
// molecules are immutable, so a pool of workers can share one provider.
package report

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/mitomaster/mitoseq/internal/mito"
	"github.com/mitomaster/mitoseq/internal/variantfile"
)

// Mode selects which layer of sequence a report reconstructs.
type Mode string

const (
	ModeSequence    Mode = "sequence"    // genomic DNA
	ModeTranscript  Mode = "transcript"  // locus RNA
	ModeTranslation Mode = "translation" // locus protein
)

// Row is one line of report output.
type Row struct {
	Name     string
	Start    int
	End      int
	Variants int
	Length   int
	Sequence string
}

// WorkItem is a parsed record tagged with its input order.
type WorkItem struct {
	Seq    int
	Record *variantfile.Record
}

// WorkResult is the reconstruction output for a single record.
type WorkResult struct {
	Seq    int
	Record *variantfile.Record
	Row    *Row
	Err    error
}

// Reporter reconstructs sequences for variant records.
type Reporter struct {
	rd      mito.ReferenceData
	mode    Mode
	locusID int // required for transcript and translation modes
	logger  *zap.Logger
}

// NewReporter creates a reporter over the given reference data.
func NewReporter(rd mito.ReferenceData, mode Mode, locusID int) *Reporter {
	return &Reporter{
		rd:      rd,
		mode:    mode,
		locusID: locusID,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for per-record warnings.
func (r *Reporter) SetLogger(l *zap.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Build reconstructs the row for a single record.
func (r *Reporter) Build(rec *variantfile.Record) (*Row, error) {
	dna, err := r.newDNA(rec)
	if err != nil {
		return nil, err
	}
	dna.SetLogger(r.logger)

	row := &Row{
		Name:     rec.Name,
		Start:    dna.Start(),
		End:      dna.End(),
		Variants: len(rec.Variants),
	}

	switch r.mode {
	case ModeSequence:
		row.Sequence, err = dna.Seq()
		row.Length = dna.Len()
	case ModeTranscript:
		var rna *mito.RNA
		rna, err = dna.Transcribe(r.locusID)
		if err == nil {
			row.Sequence, err = rna.Seq()
			row.Length, row.Start, row.End = rna.Len(), rna.Start(), rna.End()
		}
	case ModeTranslation:
		var rna *mito.RNA
		rna, err = dna.Transcribe(r.locusID)
		var aa *mito.AA
		if err == nil {
			aa, err = rna.Translate()
		}
		if err == nil {
			row.Sequence, err = aa.Seq()
			row.Length, row.Start, row.End = aa.Len(), aa.Start(), aa.End()
		}
	default:
		err = fmt.Errorf("unknown report mode %q", r.mode)
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reporter) newDNA(rec *variantfile.Record) (*mito.DNA, error) {
	if rec.Start != 0 || rec.End != 0 {
		return mito.NewDNARange(r.rd, rec.Variants, rec.Start, rec.End)
	}
	return mito.NewDNA(r.rd, rec.Variants)
}

// Run reconstructs work items using a pool of workers. Results arrive
// in completion order; use OrderedCollect to restore input order. If
// workers is 0, runtime.NumCPU() is used.
func (r *Reporter) Run(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				row, err := r.Build(item.Record)
				results <- WorkResult{
					Seq:    item.Seq,
					Record: item.Record,
					Row:    row,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in input order, buffering
// out-of-order results until the next expected sequence number arrives.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r
		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
			nextSeq++
		}
	}
	return nil
}

// RowWriter is implemented by report output formats.
type RowWriter interface {
	WriteHeader() error
	Write(row *Row) error
	Flush() error
}

// ReportAll reconstructs every record from the parser and writes the
// rows in input order. Records that fail to reconstruct are logged and
// skipped; parse errors stop the run.
func (r *Reporter) ReportAll(parser *variantfile.Parser, writer RowWriter) error {
	items := make(chan WorkItem, 2*runtime.NumCPU())
	var parseErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			rec, err := parser.Next()
			if err != nil {
				parseErr = fmt.Errorf("read record: %w", err)
				return
			}
			if rec == nil {
				return
			}
			items <- WorkItem{Seq: seq, Record: rec}
			seq++
		}
	}()

	results := r.Run(items, 0)

	if err := OrderedCollect(results, func(res WorkResult) error {
		if res.Err != nil {
			r.logger.Warn("failed to reconstruct record",
				zap.String("name", res.Record.Name),
				zap.Error(res.Err))
			return nil
		}
		return writer.Write(res.Row)
	}); err != nil {
		return err
	}

	if parseErr != nil {
		return parseErr
	}
	return writer.Flush()
}
