package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/renameio/v2"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/decision-sim/src/models"
)

const DefaultDecisionsFilename = "decisions_analysis_ready.csv"

// ExportDecisionsToCsv writes the decision log to outPath. The rows are
// written to a temp file in the same directory which is then renamed over
// outPath, so a failed export never leaves a truncated file behind.
func ExportDecisionsToCsv(outPath string, decisions []*models.Decision) (string, error) {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("ExportDecisionsToCsv: failed to create directory: %w", err)
	}

	pf, err := renameio.NewPendingFile(outPath, renameio.WithPermissions(0644))
	if err != nil {
		return "", fmt.Errorf("ExportDecisionsToCsv: failed to create file: %w", err)
	}

	defer pf.Cleanup()

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(pf))
	if err := gocsv.MarshalCSV(&decisions, writer); err != nil {
		return "", fmt.Errorf("ExportDecisionsToCsv: failed to write to file: %w", err)
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("ExportDecisionsToCsv: failed to move file into place: %w", err)
	}

	log.Infof("Exported %d decisions to %s", len(decisions), outPath)

	return outPath, nil
}

func ImportDecisionsFromCsv(inPath string) ([]*models.Decision, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("ImportDecisionsFromCsv: failed to open file: %w", err)
	}

	defer f.Close()

	var decisions []*models.Decision
	if err := gocsv.UnmarshalFile(f, &decisions); err != nil {
		return nil, fmt.Errorf("ImportDecisionsFromCsv: failed to parse %s: %w", inPath, err)
	}

	return decisions, nil
}
