package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

var csvHeader = []string{"round", "light", "player_id", "delta", "position", "status"}

// WriteCSV writes the round history as a flat CSV log, one row per
// recorded movement.
func WriteCSV(path string, report *domain.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, round := range report.Rounds {
		for _, m := range round.Movements {
			row := []string{
				strconv.Itoa(round.Round),
				string(round.Light),
				m.PlayerID,
				strconv.FormatFloat(m.Delta, 'f', 4, 64),
				strconv.FormatFloat(m.Position, 'f', 4, 64),
				string(m.Status),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
