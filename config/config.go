package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and passed to constructors.
type Config struct {
	Port      string
	DBPath    string
	RedisAddr string
	RedisPwd  string
	WebOrigin string

	SessionTTL time.Duration

	QRDir       string
	UploadDir   string
	ExportDir   string
	MaxUploadMB int64

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	// CronSpec drives the overdue-loan scan, default once a day at 09:00.
	CronSpec string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
			return n
		}
		return def
	}

	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "86400") + "s"); err == nil {
		ttl = d
	}

	return Config{
		Port:         get("PORT", "3001"),
		DBPath:       get("DB_PATH", "archivo.db"),
		RedisAddr:    get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:     os.Getenv("REDIS_PASSWORD"),
		WebOrigin:    get("WEB_ORIGIN", "http://localhost:5173"),
		SessionTTL:   ttl,
		QRDir:        get("QR_DIR", "static/qr_codes"),
		UploadDir:    get("UPLOAD_DIR", "uploads"),
		ExportDir:    get("EXPORT_DIR", "exports"),
		MaxUploadMB:  int64(getInt("MAX_UPLOAD_MB", 16)),
		SMTPHost:     get("SMTP_HOST", "smtp.example.com"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     get("MAIL_FROM", os.Getenv("SMTP_USER")),
		CronSpec:     get("CRON_SPEC", "0 9 * * *"),
	}
}
