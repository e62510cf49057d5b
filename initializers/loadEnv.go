package initializers

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
)

// Config is the process configuration, read once from the environment after .env
// has been loaded.
type Config struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	FrontendURL    string
	TemplatesDir   string
	RenderMode     string
	AllowedOrigins []string
	S3Bucket       string
	LogLevel       string
	Timezone       string

	FromEmail         string
	FromEmailPassword string
	FromEmailSMTP     string
	SMTPAddress       string
}

var Env Config

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}
	Env = ReadConfig()
	configureLogging(Env.LogLevel)
}

func ReadConfig() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		DBDriver:       getenv("DB_DRIVER", "mysql"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         getenv("DB_HOST", "127.0.0.1"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "vkusnyashka"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		FrontendURL:    getenv("FRONTEND_URL", "http://localhost:8080"),
		TemplatesDir:   getenv("TEMPLATES_DIR", "templates"),
		RenderMode:     getenv("RENDER_MODE", "html"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:8080")),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		Timezone:       getenv("TIMEZONE", "Local"),

		FromEmail:         os.Getenv("FROM_EMAIL"),
		FromEmailPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
		FromEmailSMTP:     os.Getenv("FROM_EMAIL_SMTP"),
		SMTPAddress:       os.Getenv("SMTP_ADDRESS"),
	}
}

// Location resolves TIMEZONE; calendar dates such as "today" for promotions
// are taken in this zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.NotValidf("timezone %q", c.Timezone)
	}
	return loc, nil
}

func configureLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("Unknown log level, falling back to info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
