// Command ccparse extracts structured fields from credit card statement PDFs.
//
// Usage:
//
//	ccparse [flags] <statement.pdf | directory>
//
// Single-document mode prints one record as JSON on stdout. Directory mode
// processes every *.pdf directly under the directory and prints a summary
// document with results and failures. Exit code is 0 whenever at least one
// document was read, even if some fields were not found.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/NirmitD9/credit-card-statement-parser/internal/batch"
	"github.com/NirmitD9/credit-card-statement-parser/internal/logger"
	"github.com/NirmitD9/credit-card-statement-parser/internal/pdftext"
	"github.com/NirmitD9/credit-card-statement-parser/internal/statement"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	write := flag.Bool("write", false, "also write JSON files next to the input documents")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ccparse [flags] <statement.pdf | directory>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(*verbose)
	if err := run(flag.Arg(0), *write, log); err != nil {
		log.Fatal().Err(err).Msg("ccparse failed")
	}
}

func run(path string, write bool, log zerolog.Logger) error {
	info, err := os.Stat(path)
	if err != nil {
		return &statement.ParseError{
			Code:    statement.ErrInvalidInput,
			Path:    path,
			Message: "input path does not exist",
			Cause:   err,
		}
	}

	runner := batch.NewRunner(pdftext.New(), log, write)

	if info.IsDir() {
		summary, err := runner.ProcessDir(path)
		if err != nil {
			return err
		}
		if err := emit(summary); err != nil {
			return err
		}
		if len(summary.Results) == 0 {
			return &statement.ParseError{
				Code:    statement.ErrInvalidInput,
				Path:    path,
				Message: "no documents could be read",
			}
		}
		return nil
	}

	rec, err := runner.ProcessFile(path)
	if err != nil {
		return err
	}
	return emit(rec)
}

func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
