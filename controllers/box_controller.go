package controllers

import (
	"net/http"
	"strconv"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/gin-gonic/gin"
)

type BoxController struct{ *Srv }

func GetBoxController(s *Srv) *BoxController { return &BoxController{Srv: s} }

type boxInput struct {
	Code         string `json:"code"`
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Year         string `json:"year" binding:"required"`
	TypeID       uint   `json:"typeId" binding:"required"`
	Observation  string `json:"observation"`
	Description  string `json:"description"`
	WarehouseID  uint   `json:"warehouseId" binding:"required"`
	LocationID   uint   `json:"locationId" binding:"required"`
	Shelf        string `json:"shelf" binding:"required"`
	Row          string `json:"row" binding:"required"`
	Column       string `json:"column" binding:"required"`
}

// GET /api/boxes?q=&page=&size=
func (bc *BoxController) List(c *gin.Context) {
	q := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	var (
		rows  []models.BoxRow
		total int64
		err   error
	)
	if q != "" {
		rows, total, err = bc.Repo.SearchBoxes(c.Request.Context(), q, page, size)
	} else {
		rows, total, err = bc.Repo.ListBoxes(c.Request.Context(), page, size)
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": total, "boxes": rows})
}

// POST /api/boxes — the display id comes back in the response so the staff
// can write it on the physical box right away.
func (bc *BoxController) Create(c *gin.Context) {
	var in boxInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	box := models.Box{
		Code:         in.Code,
		DepartmentID: in.DepartmentID,
		Year:         in.Year,
		TypeID:       in.TypeID,
		Observation:  in.Observation,
		Description:  in.Description,
		WarehouseID:  in.WarehouseID,
		LocationID:   in.LocationID,
		Shelf:        in.Shelf,
		Row:          in.Row,
		Column:       in.Column,
	}
	displayID, err := bc.Repo.CreateBox(c.Request.Context(), &box)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"displayId": displayID, "box": box})
}

// GET /api/boxes/:id
func (bc *BoxController) Get(c *gin.Context) {
	row, err := bc.Repo.GetBox(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /api/boxes/:id
func (bc *BoxController) Update(c *gin.Context) {
	var in boxInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	err := bc.Repo.UpdateBox(c.Request.Context(), pathID(c, "id"), db.BoxFields{
		Code:         in.Code,
		DepartmentID: in.DepartmentID,
		Year:         in.Year,
		TypeID:       in.TypeID,
		Observation:  in.Observation,
		Description:  in.Description,
		WarehouseID:  in.WarehouseID,
		LocationID:   in.LocationID,
		Shelf:        in.Shelf,
		Row:          in.Row,
		Column:       in.Column,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// DELETE /api/boxes/:id — loans cascade.
func (bc *BoxController) Delete(c *gin.Context) {
	if err := bc.Repo.DeleteBox(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/boxes/qr-range?start=&end= — batch QR sticker printing over a
// numeric label range.
func (bc *BoxController) QRRange(c *gin.Context) {
	start, err1 := strconv.Atoi(c.Query("start"))
	end, err2 := strconv.Atoi(c.Query("end"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "los rangos deben ser numéricos, por ejemplo: 00001"})
		return
	}
	rows, err := bc.Repo.ListBoxesByDisplayRange(c.Request.Context(), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"boxes": rows})
}
