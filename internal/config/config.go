package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Images    ImagesConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type ImagesConfig struct {
	Dir string
}

// LoadConfig loads configuration from environment variables, an optional .env
// file, and the database properties file named by DB_PROPERTIES_FILE.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("DB_PROPERTIES_FILE", "db.properties")
	viper.SetDefault("IMAGE_DIR", "static/images")
	viper.SetDefault("RATE_LIMIT_RPS", 25.0)
	viper.SetDefault("RATE_LIMIT_BURST", 50)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			Timeout: time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Images: ImagesConfig{
			Dir: viper.GetString("IMAGE_DIR"),
		},
	}

	// MONGODB_URI wins when set; otherwise assemble it from the properties file.
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.MongoDB.URI = uri
		cfg.MongoDB.Database = viper.GetString("MONGODB_DATABASE")
		return cfg, nil
	}

	db, err := LoadDBProperties(viper.GetString("DB_PROPERTIES_FILE"))
	if err != nil {
		return nil, err
	}
	cfg.MongoDB.URI = db.URI()
	cfg.MongoDB.Database = db.Database
	return cfg, nil
}

// DBProperties are the connection pieces read from the properties file.
type DBProperties struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Database string
	Params   string
}

// LoadDBProperties reads and validates the database properties file.
func LoadDBProperties(path string) (*DBProperties, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load db properties %s: %w", path, err)
	}
	db := &DBProperties{
		Scheme:   p.GetString("scheme", "mongodb"),
		User:     p.GetString("user", ""),
		Password: p.GetString("password", ""),
		Host:     p.GetString("host", ""),
		Database: p.GetString("database", ""),
		Params:   p.GetString("params", ""),
	}
	if db.Host == "" {
		return nil, fmt.Errorf("db properties %s: host is required", path)
	}
	if db.Database == "" {
		return nil, fmt.Errorf("db properties %s: database is required", path)
	}
	return db, nil
}

// URI assembles the MongoDB connection string. Credentials are URL-escaped;
// the params string is appended verbatim when present.
func (d *DBProperties) URI() string {
	cred := ""
	if d.User != "" {
		cred = url.UserPassword(d.User, d.Password).String() + "@"
	}
	uri := fmt.Sprintf("%s://%s%s/%s", d.Scheme, cred, d.Host, d.Database)
	if d.Params != "" {
		uri += "?" + d.Params
	}
	return uri
}
