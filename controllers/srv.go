package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/config"
	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/notify"
	"Gin_sqlite_redis_archive_tool/session"
)

// Srv bundles what every controller needs.
type Srv struct {
	Repo *db.Repo
	Cfg  config.Config
	Mail notify.Sender

	appSess *session.AppSessionStore
}

func GetSrv(a *app.App, mail notify.Sender) *Srv {
	return &Srv{
		Repo:    a.Repo,
		Cfg:     a.Config,
		Mail:    mail,
		appSess: a.AppSessions(),
	}
}

func (s *Srv) AppSessions() *session.AppSessionStore { return s.appSess }

func (s *Srv) secureCookie() bool { return strings.HasPrefix(s.Cfg.WebOrigin, "https://") }

// pathID parses the numeric :id path param; 0 means invalid.
func pathID(c *app.Ctx, name string) uint {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// fail maps repository errors onto HTTP statuses: missing rows are 404,
// duplicate labels 409, the rest 500.
func fail(c *app.Ctx, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "no encontrado"})
	case errors.Is(err, db.ErrDuplicateDisplayID):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
