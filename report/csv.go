// Package report exports run results as summary.csv rows with the column
// set the downstream analysis tooling consumes.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/lixenwraith/nqueens/solver"
)

// Columns is the export schema, in order.
var Columns = []string{
	"Id",
	"NQueens",
	"Seed",
	"AlgorithmType",
	"MutationRate",
	"FinalMutationRate",
	"Generations",
	"PopulationSize",
	"Complexity",
	"ElapsedTimeSeconds",
	"StagnationCount",
	"StagnationMutationThresholdHigh",
	"StagnationMutationThresholdLow",
	"Intersections",
	"Failures",
}

// Writer appends result rows to a CSV file, writing the header only when
// the file is new or empty.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// OpenCSV opens (or creates) path for appending result rows.
func OpenCSV(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("report: stat %s: %w", path, err)
	}

	w := &Writer{f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := w.w.Write(Columns); err != nil {
			f.Close()
			return nil, fmt.Errorf("report: write header: %w", err)
		}
	}
	return w, nil
}

// WriteResult appends one row for r with a fresh run id.
func (w *Writer) WriteResult(r *solver.RunResult) error {
	if err := w.w.Write(Row(uuid.NewString(), r)); err != nil {
		return fmt.Errorf("report: write row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return fmt.Errorf("report: flush: %w", err)
	}
	return w.f.Close()
}

// Row renders one result as a CSV record in Columns order. Failures is 1
// when the run ended with a conflicted best board.
func Row(id string, r *solver.RunResult) []string {
	failures := 0
	if !r.Solved() {
		failures = 1
	}
	return []string{
		id,
		strconv.Itoa(r.N),
		strconv.FormatUint(r.Seed, 10),
		r.Algorithm,
		strconv.FormatFloat(r.InitialMutationRate, 'f', -1, 64),
		strconv.FormatFloat(r.FinalMutationRate, 'f', -1, 64),
		strconv.Itoa(r.Generations),
		strconv.Itoa(r.PopulationSize),
		strconv.FormatFloat(r.Complexity, 'f', -1, 64),
		strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
		strconv.Itoa(r.StagnationCount),
		strconv.Itoa(r.StagnationThresholdHigh),
		strconv.Itoa(r.StagnationThresholdLow),
		strconv.Itoa(r.Conflicts),
		strconv.Itoa(failures),
	}
}
