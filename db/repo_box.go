package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"Gin_sqlite_redis_archive_tool/models"

	"gorm.io/gorm"
)

// DisplayIDWidth fixes the zero-padding of box labels. Widening it against an
// existing dataset would break the numeric ordering of old vs new ids, so it
// is a constant, not configuration.
const DisplayIDWidth = 5

const boxSelect = `
	b.id, b.display_id, b.code,
	d.name  AS department,
	b.year,
	t.name  AS type,
	b.observation, b.description,
	w.name  AS warehouse,
	l.name  AS location,
	b.shelf, b."row", b."column", b.qr_path,
	b.department_id, b.type_id, b.warehouse_id, b.location_id`

func (r *Repo) boxJoins(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table(models.BoxTable + " b").
		Joins("LEFT JOIN departments d ON d.id = b.department_id").
		Joins("LEFT JOIN box_types t ON t.id = b.type_id").
		Joins("LEFT JOIN warehouses w ON w.id = b.warehouse_id").
		Joins("LEFT JOIN locations l ON l.id = b.location_id")
}

func (r *Repo) boxQuery(ctx context.Context) *gorm.DB {
	return r.boxJoins(ctx).Select(boxSelect)
}

// NextDisplayID reads the current numeric maximum (absence counts as zero)
// and formats max+1 zero-padded. Callers must hold allocMu or be prepared to
// retry on a duplicate insert; CreateBox does both.
func (r *Repo) NextDisplayID(ctx context.Context) (string, error) {
	var max sql.NullInt64
	if err := r.DB.WithContext(ctx).Model(&models.Box{}).
		Select("MAX(CAST(display_id AS INTEGER))").
		Scan(&max).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", DisplayIDWidth, max.Int64+1), nil
}

// CreateBox allocates the next display id, writes the QR label and inserts
// the row. The unique index on display_id is the backstop for anything that
// slips past the mutex (e.g. an explicit import landing concurrently), in
// which case allocation is retried once.
func (r *Repo) CreateBox(ctx context.Context, b *models.Box) (string, error) {
	r.allocMu.Lock()
	defer r.allocMu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		id, err := r.NextDisplayID(ctx)
		if err != nil {
			return "", err
		}
		qrPath, err := r.QR.Ensure(id)
		if err != nil {
			return "", fmt.Errorf("generate qr for %s: %w", id, err)
		}
		b.ID = 0
		b.DisplayID = id
		b.QRPath = qrPath
		err = r.DB.WithContext(ctx).Create(b).Error
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
	}
	return "", ErrDuplicateDisplayID
}

// CreateBoxWithDisplayID inserts a box under a caller-chosen label, bypassing
// the allocator (import rows carrying id_caja). A taken label is reported as
// ErrDuplicateDisplayID for per-row handling.
func (r *Repo) CreateBoxWithDisplayID(ctx context.Context, b *models.Box) error {
	qrPath, err := r.QR.Ensure(b.DisplayID)
	if err != nil {
		return fmt.Errorf("generate qr for %s: %w", b.DisplayID, err)
	}
	b.QRPath = qrPath
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateDisplayID
		}
		return err
	}
	return nil
}

// BoxFields carries the editable columns; DisplayID and QRPath are fixed at
// creation.
type BoxFields struct {
	Code         string
	DepartmentID uint
	Year         string
	TypeID       uint
	Observation  string
	Description  string
	WarehouseID  uint
	LocationID   uint
	Shelf        string
	Row          string
	Column       string
}

func (r *Repo) UpdateBox(ctx context.Context, id uint, f BoxFields) error {
	return checked(r.DB.WithContext(ctx).Model(&models.Box{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"code":          f.Code,
			"department_id": f.DepartmentID,
			"year":          f.Year,
			"type_id":       f.TypeID,
			"observation":   f.Observation,
			"description":   f.Description,
			"warehouse_id":  f.WarehouseID,
			"location_id":   f.LocationID,
			"shelf":         f.Shelf,
			"row":           f.Row,
			"column":        f.Column,
		}))
}

// DeleteBox removes the box and its loans. Loans go first so a failure never
// leaves orphaned loan rows pointing at a deleted box.
func (r *Repo) DeleteBox(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("box_id = ?", id).Delete(&models.Loan{}).Error; err != nil {
			return err
		}
		return checked(tx.Where("id = ?", id).Delete(&models.Box{}))
	})
}

func (r *Repo) GetBox(ctx context.Context, id uint) (*models.BoxRow, error) {
	var row models.BoxRow
	res := r.boxQuery(ctx).Where("b.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

// GetBoxRows resolves a selection of boxes for export; missing ids are
// silently dropped, the export is bounded by what still exists.
func (r *Repo) GetBoxRows(ctx context.Context, ids []uint) ([]models.BoxRow, error) {
	var rows []models.BoxRow
	err := r.boxQuery(ctx).Where("b.id IN ?", ids).Order("b.id").Scan(&rows).Error
	return rows, err
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 50
	}
	return page, size
}

// searchCols are every textual field a substring query matches against,
// including the joined catalog names.
var searchCols = []string{
	"b.display_id", "b.code", "b.year", "b.shelf", `b."row"`, `b."column"`,
	"b.observation", "b.description",
	"d.name", "t.name", "w.name", "l.name",
}

// SearchBoxes matches q case-insensitively as a substring over searchCols and
// returns one page plus the total match count.
func (r *Repo) SearchBoxes(ctx context.Context, q string, page, size int) ([]models.BoxRow, int64, error) {
	page, size = normalizePage(page, size)

	conds := make([]string, len(searchCols))
	args := make([]any, len(searchCols))
	like := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
	for i, col := range searchCols {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = like
	}
	where := strings.Join(conds, " OR ")

	var total int64
	if err := r.boxJoins(ctx).Where(where, args...).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.BoxRow
	err := r.boxQuery(ctx).Where(where, args...).
		Order("b.id").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&rows).Error
	return rows, total, err
}

func (r *Repo) ListBoxes(ctx context.Context, page, size int) ([]models.BoxRow, int64, error) {
	page, size = normalizePage(page, size)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Box{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.BoxRow
	err := r.boxQuery(ctx).
		Order("b.id").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&rows).Error
	return rows, total, err
}

// ListBoxesByDisplayRange returns boxes whose label falls in [start, end]
// numerically, ordered by label. Backs batch QR sticker printing.
func (r *Repo) ListBoxesByDisplayRange(ctx context.Context, start, end int) ([]models.BoxRow, error) {
	var rows []models.BoxRow
	err := r.boxQuery(ctx).
		Where("CAST(b.display_id AS INTEGER) BETWEEN ? AND ?", start, end).
		Order("CAST(b.display_id AS INTEGER)").
		Scan(&rows).Error
	return rows, err
}

// ListBoxesByDepartment backs per-department cover sheet printing.
func (r *Repo) ListBoxesByDepartment(ctx context.Context, departmentID uint) ([]models.BoxRow, error) {
	var rows []models.BoxRow
	err := r.boxQuery(ctx).
		Where("b.department_id = ?", departmentID).
		Order("CAST(b.display_id AS INTEGER)").
		Scan(&rows).Error
	return rows, err
}

// UsedDisplayIDs snapshots every label currently in use, so the importer can
// reject explicit duplicates without a query per row.
func (r *Repo) UsedDisplayIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	if err := r.DB.WithContext(ctx).Model(&models.Box{}).
		Pluck("display_id", &ids).Error; err != nil {
		return nil, err
	}
	used := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		used[id] = struct{}{}
	}
	return used, nil
}
