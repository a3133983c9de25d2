package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	HTTPAddr  string
	GinMode   string
	LogLevel  string
	LogFormat string

	StoreDriver string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	DBHost string
	DBUser string
	DBPass string
	DBName string

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	BotToken string
	AdminID  int64
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can avoid the
// real environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		HTTPAddr:  get("HTTP_ADDR", ":8080"),
		GinMode:   get("GIN_MODE", "release"),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "json"),

		StoreDriver: get("STORE_DRIVER", DriverMongo),

		MongoURI:        getenv("MONGO_URI"),
		MongoDatabase:   get("MONGO_DATABASE", "QuickAidDB"),
		MongoCollection: get("MONGO_COLLECTION", "Tickets"),

		DBHost: getenv("DB_HOST"),
		DBUser: getenv("DB_USER"),
		DBPass: getenv("DB_PASS"),
		DBName: getenv("DB_NAME"),

		SendGridAPIKey: getenv("SENDGRID_API_KEY"),
		MailFrom:       get("MAIL_FROM", "support@yourdomain.com"),
		MailFromName:   get("MAIL_FROM_NAME", "QuickAid Support"),

		BotToken: getenv("BOT_TOKEN"),
	}

	if raw := getenv("ADMIN_ID"); raw != "" {
		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_ID %q: %w", raw, err)
		}
		cfg.AdminID = adminID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORE_DRIVER=mongo")
		}
	case DriverMySQL:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return errors.New("DB_HOST, DB_USER and DB_NAME are required when STORE_DRIVER=mysql")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.MailFrom == "" {
		return errors.New("MAIL_FROM must not be empty")
	}
	return nil
}

// AdminAlertsEnabled reports whether new tickets should be forwarded to the
// Telegram admin chat.
func (c *Config) AdminAlertsEnabled() bool {
	return c.BotToken != "" && c.AdminID != 0
}

func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true",
		c.DBUser, c.DBPass, c.DBHost, c.DBName)
}
