package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NirmitD9/credit-card-statement-parser/internal/logger"
	"github.com/NirmitD9/credit-card-statement-parser/internal/statement"
)

// fakeExtractor serves canned page texts keyed by file basename.
type fakeExtractor struct {
	pages map[string][]string
}

func (f *fakeExtractor) ExtractPages(path string) ([]string, error) {
	pages, ok := f.pages[filepath.Base(path)]
	if !ok {
		return nil, statement.Unreadable(path, errors.New("corrupt document"))
	}
	return pages, nil
}

const hdfcText = `HDFC Bank Credit Card Statement
Card Number: XXXX XXXX XXXX 7890
Statement Period: 01/03/2024 to 31/03/2024
Payment Due Date: 15/04/2024
Total Amount Due: ₹45,230.00`

const axisText = `Axis Bank Credit Card
**** **** **** 5544
Payment Due Date: 27/02/2024
Total Amount Due: ₹3,210.75`

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 stub"), 0o644))
}

func TestProcessFile(t *testing.T) {
	var buf bytes.Buffer
	extractor := &fakeExtractor{pages: map[string][]string{"a.pdf": {hdfcText}}}
	r := NewRunner(extractor, logger.NewWithWriter(&buf), false)

	rec, err := r.ProcessFile("/anywhere/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, statement.IssuerHDFC, rec.Issuer)
	require.NotNil(t, rec.Last4)
	assert.Equal(t, "7890", *rec.Last4)
}

func TestProcessFileUnreadable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&fakeExtractor{pages: map[string][]string{}}, logger.NewWithWriter(&buf), false)

	_, err := r.ProcessFile("/anywhere/corrupt.pdf")
	require.Error(t, err)

	var perr *statement.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, statement.ErrUnreadableDocument, perr.Code)
}

func TestProcessDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "b.PDF") // extension match is case-insensitive
	touch(t, dir, "c.pdf")
	touch(t, dir, "corrupt.pdf")
	touch(t, dir, "notes.txt") // ignored

	extractor := &fakeExtractor{pages: map[string][]string{
		"a.pdf": {hdfcText},
		"b.PDF": {axisText},
		"c.pdf": {"Mystery Bank, no markers at all"},
	}}

	var buf bytes.Buffer
	r := NewRunner(extractor, logger.NewWithWriter(&buf), false)

	summary, err := r.ProcessDir(dir)
	require.NoError(t, err)

	require.Len(t, summary.Results, 3)
	require.Len(t, summary.Failures, 1)
	assert.NotEmpty(t, summary.RunID)

	// Results stay in input (name) order.
	assert.Equal(t, "a.pdf", summary.Results[0].File)
	assert.Equal(t, "b.PDF", summary.Results[1].File)
	assert.Equal(t, "c.pdf", summary.Results[2].File)

	assert.Equal(t, statement.IssuerHDFC, summary.Results[0].Record.Issuer)
	assert.Equal(t, statement.IssuerAxis, summary.Results[1].Record.Issuer)
	// Unknown issuer is a successful result with absent fields, not a failure.
	assert.Equal(t, statement.IssuerUnknown, summary.Results[2].Record.Issuer)
	assert.Nil(t, summary.Results[2].Record.TotalDue)

	assert.Equal(t, "corrupt.pdf", summary.Failures[0].File)
	assert.Contains(t, summary.Failures[0].Error, "UNREADABLE_DOCUMENT")
}

func TestProcessDirNoPDFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))

	var buf bytes.Buffer
	r := NewRunner(&fakeExtractor{}, logger.NewWithWriter(&buf), false)

	_, err := r.ProcessDir(dir)
	require.Error(t, err)

	var perr *statement.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, statement.ErrInvalidInput, perr.Code)
}

func TestProcessDirMissing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&fakeExtractor{}, logger.NewWithWriter(&buf), false)

	_, err := r.ProcessDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestWriteJSONSidecarsAndSummary(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")

	extractor := &fakeExtractor{pages: map[string][]string{"a.pdf": {hdfcText}}}

	var buf bytes.Buffer
	r := NewRunner(extractor, logger.NewWithWriter(&buf), true)

	summary, err := r.ProcessDir(dir)
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	sidecar, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoError(t, err)

	var rec statement.Record
	require.NoError(t, json.Unmarshal(sidecar, &rec))
	assert.Equal(t, statement.IssuerHDFC, rec.Issuer)

	summaryData, err := os.ReadFile(filepath.Join(dir, summaryFilename))
	require.NoError(t, err)

	var onDisk Summary
	require.NoError(t, json.Unmarshal(summaryData, &onDisk))
	assert.Equal(t, summary.RunID, onDisk.RunID)
	require.Len(t, onDisk.Results, 1)
	assert.Equal(t, "a.pdf", onDisk.Results[0].File)
}
