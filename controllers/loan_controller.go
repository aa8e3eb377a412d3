package controllers

import (
	"net/http"
	"strconv"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/models"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func GetLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

type loanInput struct {
	BoxID    uint   `json:"boxId" binding:"required"`
	Item     string `json:"item" binding:"required"`
	LoanDate string `json:"loanDate" binding:"required,datetime=2006-01-02"`
	DueDate  string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Email    string `json:"email" binding:"required,email"`
}

// GET /api/loans?boxId=&status=open|returned
func (lc *LoanController) List(c *gin.Context) {
	boxID, _ := strconv.ParseUint(c.Query("boxId"), 10, 32)
	ls, err := lc.Repo.ListLoans(c.Request.Context(), uint(boxID), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"loans": ls})
}

// POST /api/loans — the box must exist; a loan against a missing box is a 404.
func (lc *LoanController) Create(c *gin.Context) {
	var in loanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if _, err := lc.Repo.GetBox(c.Request.Context(), in.BoxID); err != nil {
		fail(c, err)
		return
	}
	l := &models.Loan{
		BoxID:    in.BoxID,
		Item:     in.Item,
		LoanDate: in.LoanDate,
		DueDate:  in.DueDate,
		Email:    in.Email,
	}
	if err := lc.Repo.CreateLoan(c.Request.Context(), l); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// GET /api/loans/:id
func (lc *LoanController) Get(c *gin.Context) {
	l, err := lc.Repo.FindLoanByID(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// PUT /api/loans/:id — edits never touch the returned flag; that only moves
// through the return endpoint.
func (lc *LoanController) Update(c *gin.Context) {
	var in loanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	err := lc.Repo.UpdateLoan(c.Request.Context(), pathID(c, "id"), db.LoanFields{
		BoxID:    in.BoxID,
		Item:     in.Item,
		LoanDate: in.LoanDate,
		DueDate:  in.DueDate,
		Email:    in.Email,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// DELETE /api/loans/:id
func (lc *LoanController) Delete(c *gin.Context) {
	if err := lc.Repo.DeleteLoan(c.Request.Context(), pathID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/loans/:id/return
func (lc *LoanController) Return(c *gin.Context) {
	l, err := lc.Repo.MarkLoanReturned(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}
