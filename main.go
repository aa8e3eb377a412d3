package main

import (
	"log"

	"Gin_sqlite_redis_archive_tool/app"
	"Gin_sqlite_redis_archive_tool/config"
	"Gin_sqlite_redis_archive_tool/notify"
	"Gin_sqlite_redis_archive_tool/routes"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	application := app.MustNew(cfg)
	defer application.Close()

	mailer := notify.NewMailer(cfg)
	routes.RegisterRoutes(application.Router, application, mailer)

	// Health
	application.Router.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	notifier := notify.NewNotifier(application.Repo, mailer)
	sched, err := notifier.Schedule(cfg.CronSpec)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer sched.Stop()

	log.Printf("listening on :%s", cfg.Port)
	_ = application.Router.Run(":" + cfg.Port)
}
