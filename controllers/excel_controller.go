package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/excel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExcelController struct {
	*Srv
	Importer *excel.Importer
	Exporter *excel.Exporter
}

func GetExcelController(s *Srv, im *excel.Importer, ex *excel.Exporter) *ExcelController {
	return &ExcelController{Srv: s, Importer: im, Exporter: ex}
}

// POST /api/excel/import — multipart upload. The file is parked under the
// upload dir with a scratch name and removed after processing regardless of
// outcome.
func (ec *ExcelController) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "archivo requerido"})
		return
	}
	if fh.Size > ec.Cfg.MaxUploadMB<<20 {
		c.JSON(http.StatusRequestEntityTooLarge, app.H{"error": "archivo demasiado grande"})
		return
	}
	if err := os.MkdirAll(ec.Cfg.UploadDir, 0o755); err != nil {
		fail(c, err)
		return
	}
	path := filepath.Join(ec.Cfg.UploadDir, uuid.NewString()+".xlsx")
	if err := c.SaveUploadedFile(fh, path); err != nil {
		fail(c, err)
		return
	}
	defer os.Remove(path)

	res, err := ec.Importer.ImportFile(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"imported": res.Imported,
		"errors":   res.Errors,
		"message":  res.Summary(),
	})
}

// POST /api/excel/export — serializes the selected boxes and streams the
// produced file back; it also stays on disk under the export dir.
func (ec *ExcelController) Export(c *gin.Context) {
	var in struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rows, err := ec.Repo.GetBoxRows(c.Request.Context(), in.IDs)
	if err != nil {
		fail(c, err)
		return
	}
	path, err := ec.Exporter.Write(rows)
	if err != nil {
		fail(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
