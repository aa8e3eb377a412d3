package controllers

import (
	"net/http"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/covers"

	"github.com/gin-gonic/gin"
)

// CoverController resolves the printable cover sheets: box data plus the
// template id the frontend should render it with.
type CoverController struct {
	*Srv
	Registry *covers.Registry
}

func GetCoverController(s *Srv, reg *covers.Registry) *CoverController {
	return &CoverController{Srv: s, Registry: reg}
}

// GET /api/boxes/:id/cover
func (cv *CoverController) BoxCover(c *gin.Context) {
	row, err := cv.Repo.GetBox(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	override := ""
	if dep, err := cv.Repo.FindDepartmentByID(c.Request.Context(), row.DepartmentID); err == nil {
		override = dep.CoverTemplate
	}
	c.JSON(http.StatusOK, app.H{
		"template": cv.Registry.Resolve(row.Department, override),
		"box":      row,
	})
}

// GET /api/departments/:id/cover — every box of the department, ordered by
// label, with one template for the whole batch.
func (cv *CoverController) DepartmentCover(c *gin.Context) {
	dep, err := cv.Repo.FindDepartmentByID(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	rows, err := cv.Repo.ListBoxesByDepartment(c.Request.Context(), dep.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, app.H{"error": "no hay cajas en este departamento"})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"template":   cv.Registry.Resolve(dep.Name, dep.CoverTemplate),
		"department": dep.Name,
		"boxes":      rows,
	})
}
