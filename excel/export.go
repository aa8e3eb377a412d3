package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Gin_sqlite_redis_archive_tool/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Cajas"

// exportHeader mirrors the import columns plus the internal id, so an
// exported file re-imports cleanly (the extra "id" column is simply ignored
// on the way back in).
var exportHeader = []any{
	"id", ColDisplayID, ColCode, ColDepartment, ColYear, ColType,
	ColObservation, ColDescription, ColWarehouse, ColLocation,
	ColShelf, ColRow, ColColumn,
}

// Exporter writes selections of boxes to timestamped xlsx files under a
// fixed directory.
type Exporter struct {
	Dir string
}

func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Exporter{Dir: dir}, nil
}

// Write serializes the given rows and returns the path of the created file.
func (ex *Exporter) Write(rows []models.BoxRow) (string, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exportSheet)

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return "", err
	}
	for i, b := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		record := []any{
			b.ID, b.DisplayID, b.Code, b.Department, b.Year, b.Type,
			b.Observation, b.Description, b.Warehouse, b.Location,
			b.Shelf, b.Row, b.Column,
		}
		if err := f.SetSheetRow(exportSheet, cell, &record); err != nil {
			return "", err
		}
	}

	name := fmt.Sprintf("cajas_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(ex.Dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
