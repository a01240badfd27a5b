package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/bwcd-123/snowdrift/config"
)

// OutputManager handles structured sweep output with CSV logging.
type OutputManager struct {
	dir         string
	resultsFile *os.File

	// Track if the header has been written
	resultsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	resultsPath := filepath.Join(dir, "results.csv")
	f, err := os.Create(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("creating results.csv: %w", err)
	}

	return &OutputManager{dir: dir, resultsFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML beside the CSV.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRecord appends one sweep record to results.csv.
func (om *OutputManager) WriteRecord(rec RunRecord) error {
	if om == nil {
		return nil
	}

	records := []RunRecord{rec}

	if !om.resultsHeaderWritten {
		// First write includes the header
		if err := gocsv.Marshal(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		om.resultsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.resultsFile == nil {
		return nil
	}
	return om.resultsFile.Close()
}
