// Package batch processes one statement document or a directory of them,
// collecting per-document records and per-document failures. One bad document
// never stops the rest of a batch.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NirmitD9/credit-card-statement-parser/internal/pdftext"
	"github.com/NirmitD9/credit-card-statement-parser/internal/statement"
)

const summaryFilename = "parsing_summary.json"

// Result pairs a successfully processed document with its record.
type Result struct {
	File   string           `json:"file"`
	Record statement.Record `json:"record"`
}

// Failure records a document that could not be read. Failures are reported as
// a sibling list next to the results rather than as inline null records.
type Failure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Summary is the batch output document: results in input order plus the
// failure list, tagged with a run ID.
type Summary struct {
	RunID    string    `json:"run_id"`
	Results  []Result  `json:"results"`
	Failures []Failure `json:"failures"`
}

// Runner drives extraction over files and directories. Documents are
// independent, so it holds no per-document state.
type Runner struct {
	extractor pdftext.Extractor
	parser    *statement.Parser
	log       zerolog.Logger
	writeJSON bool
}

// NewRunner returns a runner using the given page extractor. When writeJSON is
// set, each processed document gets a JSON sidecar next to it and directory
// runs also write a parsing_summary.json into the directory.
func NewRunner(extractor pdftext.Extractor, log zerolog.Logger, writeJSON bool) *Runner {
	return &Runner{
		extractor: extractor,
		parser:    statement.NewParser(),
		log:       log,
		writeJSON: writeJSON,
	}
}

// ProcessFile extracts the field record from a single document.
func (r *Runner) ProcessFile(path string) (statement.Record, error) {
	pages, err := r.extractor.ExtractPages(path)
	if err != nil {
		return statement.Record{}, err
	}

	rec := r.parser.ParsePages(pages)
	r.log.Info().
		Str("file", filepath.Base(path)).
		Int("pages", len(pages)).
		Str("issuer", string(rec.Issuer)).
		Msg("processed statement")
	r.logFields(rec)

	if r.writeJSON {
		if err := writeSidecar(path, rec); err != nil {
			r.log.Warn().Err(err).Str("file", path).Msg("could not write sidecar")
		}
	}
	return rec, nil
}

// ProcessDir enumerates *.pdf files directly under dir (non-recursive) and
// processes them in name order. Unreadable documents land in the failure list;
// the error return covers only enumeration problems.
func (r *Runner) ProcessDir(dir string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &statement.ParseError{
			Code:    statement.ErrInvalidInput,
			Path:    dir,
			Message: "cannot list directory",
			Cause:   err,
		}
	}

	summary := &Summary{
		RunID:    uuid.NewString(),
		Results:  []Result{},
		Failures: []Failure{},
	}

	found := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		found++

		path := filepath.Join(dir, entry.Name())
		rec, err := r.ProcessFile(path)
		if err != nil {
			r.log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable document")
			summary.Failures = append(summary.Failures, Failure{
				File:  entry.Name(),
				Error: err.Error(),
			})
			continue
		}
		summary.Results = append(summary.Results, Result{File: entry.Name(), Record: rec})
	}

	if found == 0 {
		return nil, &statement.ParseError{
			Code:    statement.ErrInvalidInput,
			Path:    dir,
			Message: "no PDF documents in directory",
		}
	}

	r.log.Info().
		Str("run_id", summary.RunID).
		Int("processed", len(summary.Results)).
		Int("failed", len(summary.Failures)).
		Msg("batch complete")

	if r.writeJSON {
		if err := writeIndented(filepath.Join(dir, summaryFilename), summary); err != nil {
			r.log.Warn().Err(err).Msg("could not write summary file")
		}
	}
	return summary, nil
}

// logFields mirrors the per-field progress readout of the CLI's single-file
// mode at debug level.
func (r *Runner) logFields(rec statement.Record) {
	ev := r.log.Debug().Str("issuer", string(rec.Issuer))
	if rec.Last4 != nil {
		ev = ev.Str("last4", *rec.Last4)
	}
	if rec.BillingCycle != nil {
		ev = ev.Str("billing_cycle", fmt.Sprintf("%s to %s", rec.BillingCycle.Start, rec.BillingCycle.End))
	}
	if rec.DueDate != nil {
		ev = ev.Str("due_date", *rec.DueDate)
	}
	if rec.TotalDue != nil {
		ev = ev.Str("total_due", rec.TotalDue.String())
	}
	ev.Msg("extracted fields")
}

// writeSidecar writes the record JSON next to the source document.
func writeSidecar(docPath string, rec statement.Record) error {
	out := strings.TrimSuffix(docPath, filepath.Ext(docPath)) + ".json"
	return writeIndented(out, rec)
}

func writeIndented(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
