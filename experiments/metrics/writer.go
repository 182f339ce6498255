package metrics

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const EstimatesFile = "estimates.csv"

type EstimateRecord struct {
	Attackers   int
	Defenders   int
	Simulations int
	Wins        int
	Estimate    float64
	Exact       float64
	Duration    time.Duration
}

// AbsError is the distance between the Monte Carlo estimate and the exact odds.
func (r EstimateRecord) AbsError() float64 {
	return math.Abs(r.Estimate - r.Exact)
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of outputDir named by the experiment and the
// current timestamp.
func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outputDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteEstimateRecords(records []EstimateRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, EstimatesFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create estimates file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"attackers", "defenders", "simulations", "wins", "estimate", "exact", "abs_error", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write estimates header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Attackers),
			strconv.Itoa(record.Defenders),
			strconv.Itoa(record.Simulations),
			strconv.Itoa(record.Wins),
			strconv.FormatFloat(record.Estimate, 'f', 6, 64),
			strconv.FormatFloat(record.Exact, 'f', 6, 64),
			strconv.FormatFloat(record.AbsError(), 'f', 6, 64),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write estimate row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush estimates: %w", err)
	}
	return nil
}
