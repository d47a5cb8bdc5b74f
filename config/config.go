package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port     string
	GinMode  string
	CORS     CORS
	Database Database
	Session  Session
	Log      Log
}

type Database struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Session struct {
	Name   string
	Secret string
	MaxAge time.Duration
}

// CORS lists the browser origins allowed to call the API with cookies.
type CORS struct {
	AllowedOrigins []string
}

type Log struct {
	Level  string
	Format string
}

var defaults = map[string]interface{}{
	"port":                 "8080",
	"gin-mode":             "release",
	"cors-allowed-origins": "",
	"db-driver":            DriverSQLite,
	"db-path":              "clubreview.db",
	"db-host":              "localhost",
	"db-port":              "5432",
	"db-user":              "postgres",
	"db-password":          "",
	"db-name":              "clubreview",
	"db-sslmode":           "disable",
	"session-name":         "clubreview",
	"session-secret":       "your-secret-key-change-this-in-production",
	"session-max-age":      24 * time.Hour,
	"log-level":            "info",
	"log-format":           "console",
}

// Init loads .env when present and points viper at the environment.
// Keys use dashes; the matching variables use underscores (db-host reads
// DB_HOST).
func Init() {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// Load reads the current values from viper. Call Init first.
func Load() Config {
	return Config{
		Port:    viper.GetString("port"),
		GinMode: viper.GetString("gin-mode"),
		CORS:    CORS{
			AllowedOrigins: splitList(viper.GetString("cors-allowed-origins")),
		},
		Database: Database{
			Driver:   viper.GetString("db-driver"),
			Path:     viper.GetString("db-path"),
			Host:     viper.GetString("db-host"),
			Port:     viper.GetString("db-port"),
			User:     viper.GetString("db-user"),
			Password: viper.GetString("db-password"),
			Name:     viper.GetString("db-name"),
			SSLMode:  viper.GetString("db-sslmode"),
		},
		Session: Session{
			Name:   viper.GetString("session-name"),
			Secret: viper.GetString("session-secret"),
			MaxAge: viper.GetDuration("session-max-age"),
		},
		Log: Log{
			Level:  viper.GetString("log-level"),
			Format: viper.GetString("log-format"),
		},
	}
}

// splitList parses a comma-separated value, dropping blank entries.
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
