package excel

import (
	"context"
	"fmt"
	"strings"

	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet headers. They match the sheets the archive staff already keep,
// so they stay in Spanish.
const (
	ColDisplayID   = "id_caja"
	ColCode        = "Codigo"
	ColDepartment  = "Departamento"
	ColYear        = "Años"
	ColType        = "Tipo"
	ColObservation = "Observacion"
	ColDescription = "Descripcion"
	ColWarehouse   = "Bodega"
	ColLocation    = "Ubicacion"
	ColShelf       = "Percha"
	ColRow         = "Fila"
	ColColumn      = "Columna"
)

var requiredCols = []string{
	ColDepartment, ColYear, ColType, ColWarehouse, ColLocation,
	ColShelf, ColRow, ColColumn, ColCode,
}

// Importer reconciles spreadsheet rows against the catalogs and writes boxes
// through the repository. One bad row never aborts the batch.
type Importer struct {
	Repo *db.Repo
}

func NewImporter(repo *db.Repo) *Importer { return &Importer{Repo: repo} }

// ImportResult aggregates a whole file: rows written plus the per-row error
// messages, each prefixed with the human spreadsheet row number.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// Summary collapses the result into one user-facing message, detailing at
// most the first five errors.
func (r *ImportResult) Summary() string {
	msg := fmt.Sprintf("Se importaron %d cajas correctamente.", r.Imported)
	if len(r.Errors) == 0 {
		return msg
	}
	detail := r.Errors
	if len(detail) > 5 {
		detail = detail[:5]
	}
	msg += fmt.Sprintf(" Hubo %d errores: %s", len(r.Errors), strings.Join(detail, "; "))
	if extra := len(r.Errors) - 5; extra > 0 {
		msg += fmt.Sprintf(" y %d más.", extra)
	}
	return msg
}

// ImportFile parses one xlsx file and inserts its rows. File-level problems
// (unreadable file, missing required columns) return an error before any
// write; everything after that is accumulated per row in the result.
func (im *Importer) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("leer hoja: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("el archivo está vacío")
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, c := range requiredCols {
		if _, ok := colIdx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("faltan columnas requeridas: %s", strings.Join(missing, ", "))
	}

	// One pass over each catalog, then a snapshot of the labels in use.
	departments, err := im.Repo.DepartmentNameIDs(ctx)
	if err != nil {
		return nil, err
	}
	types, err := im.Repo.BoxTypeNameIDs(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := im.Repo.WarehouseNameIDs(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := im.Repo.LocationNameIDs(ctx)
	if err != nil {
		return nil, err
	}
	used, err := im.Repo.UsedDisplayIDs(ctx)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	for i, row := range rows[1:] {
		// Human row number as seen in the spreadsheet: header is row 1.
		n := i + 2
		cell := func(col string) string {
			idx, ok := colIdx[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		depID, ok := departments[cell(ColDepartment)]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: Departamento '%s' no existe", n, cell(ColDepartment)))
			continue
		}
		typeID, ok := types[cell(ColType)]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: Tipo '%s' no existe", n, cell(ColType)))
			continue
		}
		whID, ok := warehouses[cell(ColWarehouse)]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: Bodega '%s' no existe", n, cell(ColWarehouse)))
			continue
		}
		locID, ok := locations[cell(ColLocation)]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: Ubicación '%s' no existe", n, cell(ColLocation)))
			continue
		}

		box := models.Box{
			Code:         cell(ColCode),
			DepartmentID: depID,
			Year:         cell(ColYear),
			TypeID:       typeID,
			Observation:  cell(ColObservation),
			Description:  cell(ColDescription),
			WarehouseID:  whID,
			LocationID:   locID,
			Shelf:        cell(ColShelf),
			Row:          cell(ColRow),
			Column:       cell(ColColumn),
		}

		if displayID := cell(ColDisplayID); displayID != "" {
			if _, taken := used[displayID]; taken {
				res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: El ID de caja '%s' ya existe", n, displayID))
				continue
			}
			box.DisplayID = displayID
			if err := im.Repo.CreateBoxWithDisplayID(ctx, &box); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: %v", n, err))
				continue
			}
			used[displayID] = struct{}{}
		} else {
			id, err := im.Repo.CreateBox(ctx, &box)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: %v", n, err))
				continue
			}
			used[id] = struct{}{}
		}
		res.Imported++
	}
	return res, nil
}
