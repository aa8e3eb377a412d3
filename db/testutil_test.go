package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"Gin_sqlite_redis_archive_tool/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubQR keeps repository tests off the filesystem; the real generator has
// its own tests.
type stubQR struct{}

func (stubQR) Ensure(displayID string) (string, error) {
	return filepath.Join("static/qr_codes", displayID+".png"), nil
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(conn, stubQR{})
}

// seedCatalogs inserts one row per catalog and returns their ids.
func seedCatalogs(t *testing.T, r *Repo) (dep, typ, wh, loc uint) {
	t.Helper()
	ctx := context.Background()
	d := &models.Department{Name: "Legal"}
	bt := &models.BoxType{Name: "Expediente"}
	w := &models.Warehouse{Name: "Bodega Norte", Size: "20m"}
	l := &models.Location{Name: "Planta 1"}
	if err := r.CreateDepartment(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := r.CreateBoxType(ctx, bt); err != nil {
		t.Fatal(err)
	}
	if err := r.CreateWarehouse(ctx, w); err != nil {
		t.Fatal(err)
	}
	if err := r.CreateLocation(ctx, l); err != nil {
		t.Fatal(err)
	}
	return d.ID, bt.ID, w.ID, l.ID
}

func testBox(dep, typ, wh, loc uint) *models.Box {
	return &models.Box{
		DepartmentID: dep,
		TypeID:       typ,
		WarehouseID:  wh,
		LocationID:   loc,
		Year:         "2023",
		Shelf:        "A",
		Row:          "1",
		Column:       "2",
	}
}
