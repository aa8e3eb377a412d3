package controllers

import (
	"net/http"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/gin-gonic/gin"
)

// CatalogController covers the four reference tables. The blocks are
// deliberately parallel; each catalog keeps its own explicit handlers.
type CatalogController struct{ *Srv }

func GetCatalogController(s *Srv) *CatalogController { return &CatalogController{Srv: s} }

// Departments

func (cc *CatalogController) ListDepartments(c *gin.Context) {
	ds, err := cc.Repo.ListDepartments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"departments": ds})
}

func (cc *CatalogController) CreateDepartment(c *gin.Context) {
	var in struct {
		Name          string `json:"name" binding:"required"`
		CoverTemplate string `json:"coverTemplate"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	d := &models.Department{Name: in.Name, CoverTemplate: in.CoverTemplate}
	if err := cc.Repo.CreateDepartment(c.Request.Context(), d); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (cc *CatalogController) UpdateDepartment(c *gin.Context) {
	id := pathID(c, "id")
	var in struct {
		Name          string `json:"name" binding:"required"`
		CoverTemplate string `json:"coverTemplate"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := cc.Repo.UpdateDepartment(c.Request.Context(), id, in.Name, in.CoverTemplate); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (cc *CatalogController) DeleteDepartment(c *gin.Context) {
	if err := cc.Repo.DeleteDepartment(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Types

func (cc *CatalogController) ListBoxTypes(c *gin.Context) {
	ts, err := cc.Repo.ListBoxTypes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"types": ts})
}

func (cc *CatalogController) CreateBoxType(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	t := &models.BoxType{Name: in.Name}
	if err := cc.Repo.CreateBoxType(c.Request.Context(), t); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (cc *CatalogController) UpdateBoxType(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := cc.Repo.UpdateBoxType(c.Request.Context(), pathID(c, "id"), in.Name); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (cc *CatalogController) DeleteBoxType(c *gin.Context) {
	if err := cc.Repo.DeleteBoxType(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Warehouses

func (cc *CatalogController) ListWarehouses(c *gin.Context) {
	ws, err := cc.Repo.ListWarehouses(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"warehouses": ws})
}

func (cc *CatalogController) CreateWarehouse(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
		Size string `json:"size"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	w := &models.Warehouse{Name: in.Name, Size: in.Size}
	if err := cc.Repo.CreateWarehouse(c.Request.Context(), w); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (cc *CatalogController) UpdateWarehouse(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
		Size string `json:"size"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := cc.Repo.UpdateWarehouse(c.Request.Context(), pathID(c, "id"), in.Name, in.Size); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (cc *CatalogController) DeleteWarehouse(c *gin.Context) {
	if err := cc.Repo.DeleteWarehouse(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Locations

func (cc *CatalogController) ListLocations(c *gin.Context) {
	ls, err := cc.Repo.ListLocations(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"locations": ls})
}

func (cc *CatalogController) CreateLocation(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	l := &models.Location{Name: in.Name}
	if err := cc.Repo.CreateLocation(c.Request.Context(), l); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (cc *CatalogController) UpdateLocation(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := cc.Repo.UpdateLocation(c.Request.Context(), pathID(c, "id"), in.Name); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (cc *CatalogController) DeleteLocation(c *gin.Context) {
	if err := cc.Repo.DeleteLocation(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
