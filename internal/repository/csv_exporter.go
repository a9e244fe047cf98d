package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/pkg/logger"
)

// CSVExporter writes ranking tables to the export directory, one file per
// (category, type, window) triple.
type CSVExporter struct {
	dir string
	l   *logger.Logger
}

// NewCSVExporter creates an exporter rooted at dir.
func NewCSVExporter(dir string, l *logger.Logger) drepo.Exporter {
	return &CSVExporter{dir: dir, l: l.With("export")}
}

// TableFilename returns the artifact name for one ranking table.
func TableFilename(category models.Category, rt models.RankingType, w models.Window) string {
	return fmt.Sprintf("%s_%s_%s.csv", category, rt, w)
}

// Export writes the table and returns the artifact path.
func (e *CSVExporter) Export(table *models.RankingTable) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, TableFilename(table.Category, table.Type, table.Window))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"ticker"}, models.StatsFieldNames()...)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, row := range table.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Ticker)
		for _, v := range row.Stats.Values() {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write row %s: %w", row.Ticker, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}

	e.l.Debug("exported table",
		logger.String("path", path),
		logger.Int("rows", len(table.Rows)))
	return path, nil
}

// LoadTable reads one exported table back from dir. Returns found=false when
// the artifact does not exist yet.
func LoadTable(dir string, category models.Category, rt models.RankingType, w models.Window) (*models.RankingTable, bool, error) {
	path := filepath.Join(dir, TableFilename(category, rt, w))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", path, err)
	}

	table := &models.RankingTable{Category: category, Type: rt, Window: w}
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 2 {
			return nil, false, fmt.Errorf("parse %s: short row %d", path, i)
		}
		values := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, false, fmt.Errorf("parse %s row %d: %w", path, i, err)
			}
			values = append(values, v)
		}
		table.Rows = append(table.Rows, models.RankedRow{
			Ticker: record[0],
			Stats:  models.WindowStatsFromValues(values),
		})
	}
	return table, true, nil
}
