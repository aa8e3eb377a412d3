package app

import (
	"context"
	"log"
	"time"

	"Gin_sqlite_redis_archive_tool/config"
	"Gin_sqlite_redis_archive_tool/db"
	"Gin_sqlite_redis_archive_tool/qr"
	"Gin_sqlite_redis_archive_tool/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers read a bit shorter.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies; there is no other global state.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Repo   *db.Repo
	QR     *qr.Generator
	Config config.Config

	appSess *session.AppSessionStore
}

func (a *App) AppSessions() *session.AppSessionStore { return a.appSess }

func MustNew(cfg config.Config) *App {
	dbConn := db.ConnectDB(cfg.DBPath)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	qrGen, err := qr.NewGenerator(cfg.QRDir)
	if err != nil {
		log.Fatalf("qr dir: %v", err)
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:  r,
		DB:      dbConn,
		RDB:     rdb,
		Repo:    db.NewRepo(dbConn, qrGen),
		QR:      qrGen,
		Config:  cfg,
		appSess: session.NewAppSessionStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() { _ = a.RDB.Close() }
