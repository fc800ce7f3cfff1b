// Package export writes finished game reports to files, the machine
// readable counterpart of the console renderer.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

// WriteJSON writes the full report as an indented JSON file.
func WriteJSON(path string, report *domain.Report) error {
	buf, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
