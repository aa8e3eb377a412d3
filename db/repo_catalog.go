package db

import (
	"context"

	"Gin_sqlite_redis_archive_tool/models"
)

// Catalog CRUD. Deleting a referenced row is allowed; boxes keep the dangling
// id and the joined views resolve the name to "".

// Departments

func (r *Repo) CreateDepartment(ctx context.Context, d *models.Department) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *Repo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var ds []models.Department
	err := r.DB.WithContext(ctx).Order("name").Find(&ds).Error
	return ds, err
}

func (r *Repo) FindDepartmentByID(ctx context.Context, id uint) (*models.Department, error) {
	var d models.Department
	if err := r.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *Repo) UpdateDepartment(ctx context.Context, id uint, name, coverTemplate string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.Department{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "cover_template": coverTemplate}))
}

func (r *Repo) DeleteDepartment(ctx context.Context, id uint) error {
	return checked(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Department{}))
}

// Types

func (r *Repo) CreateBoxType(ctx context.Context, t *models.BoxType) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *Repo) ListBoxTypes(ctx context.Context) ([]models.BoxType, error) {
	var ts []models.BoxType
	err := r.DB.WithContext(ctx).Order("name").Find(&ts).Error
	return ts, err
}

func (r *Repo) UpdateBoxType(ctx context.Context, id uint, name string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.BoxType{}).
		Where("id = ?", id).
		Update("name", name))
}

func (r *Repo) DeleteBoxType(ctx context.Context, id uint) error {
	return checked(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.BoxType{}))
}

// Warehouses

func (r *Repo) CreateWarehouse(ctx context.Context, w *models.Warehouse) error {
	return r.DB.WithContext(ctx).Create(w).Error
}

func (r *Repo) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	var ws []models.Warehouse
	err := r.DB.WithContext(ctx).Order("name").Find(&ws).Error
	return ws, err
}

func (r *Repo) UpdateWarehouse(ctx context.Context, id uint, name, size string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.Warehouse{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "size": size}))
}

func (r *Repo) DeleteWarehouse(ctx context.Context, id uint) error {
	return checked(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Warehouse{}))
}

// Locations

func (r *Repo) CreateLocation(ctx context.Context, l *models.Location) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

func (r *Repo) ListLocations(ctx context.Context) ([]models.Location, error) {
	var ls []models.Location
	err := r.DB.WithContext(ctx).Order("name").Find(&ls).Error
	return ls, err
}

func (r *Repo) UpdateLocation(ctx context.Context, id uint, name string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.Location{}).
		Where("id = ?", id).
		Update("name", name))
}

func (r *Repo) DeleteLocation(ctx context.Context, id uint) error {
	return checked(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Location{}))
}

// Name→id lookup maps, one query per catalog. The importer builds these once
// per file instead of resolving names row by row. Duplicate names keep the
// highest id (last row wins, like a dict build).

type nameID struct {
	ID   uint
	Name string
}

func (r *Repo) nameIDs(ctx context.Context, table string) (map[string]uint, error) {
	var rows []nameID
	if err := r.DB.WithContext(ctx).Table(table).Select("id, name").Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(rows))
	for _, row := range rows {
		m[row.Name] = row.ID
	}
	return m, nil
}

func (r *Repo) DepartmentNameIDs(ctx context.Context) (map[string]uint, error) {
	return r.nameIDs(ctx, models.Department{}.TableName())
}

func (r *Repo) BoxTypeNameIDs(ctx context.Context) (map[string]uint, error) {
	return r.nameIDs(ctx, models.BoxType{}.TableName())
}

func (r *Repo) WarehouseNameIDs(ctx context.Context) (map[string]uint, error) {
	return r.nameIDs(ctx, models.Warehouse{}.TableName())
}

func (r *Repo) LocationNameIDs(ctx context.Context) (map[string]uint, error) {
	return r.nameIDs(ctx, models.Location{}.TableName())
}
