package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type DatabaseConfig struct {
	Dialect     string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type AppConfig struct {
	Environment string
	Version     string
}

var defaults = map[string]any{
	"port":             "8080",
	"cors_origins":     "*",
	"rate_limit_rps":   0.0,
	"rate_limit_burst": 20,
	"db_dialect":       DialectPostgres,
	"db_host":          "localhost",
	"db_port":          5432,
	"db_user":          "postgres",
	"db_pass":          "",
	"db_name":          "cpm",
	"db_sslmode":       "disable",
	"db_auto_migrate":  true,
	"app_env":          "development",
	"app_version":      "1.0.0",
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("port"),
			CORSOrigins:    splitList(v.GetStringSlice("cors_origins")),
			RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
			RateLimitBurst: v.GetInt("rate_limit_burst"),
		},
		Database: DatabaseConfig{
			Dialect:     strings.ToLower(strings.TrimSpace(v.GetString("db_dialect"))),
			Host:        v.GetString("db_host"),
			Port:        v.GetInt("db_port"),
			User:        v.GetString("db_user"),
			Password:    v.GetString("db_pass"),
			Name:        v.GetString("db_name"),
			SSLMode:     v.GetString("db_sslmode"),
			AutoMigrate: v.GetBool("db_auto_migrate"),
		},
		App: AppConfig{
			Environment: v.GetString("app_env"),
			Version:     v.GetString("app_version"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Dialect {
	case DialectPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	case DialectSQLite:
	default:
		return fmt.Errorf("unsupported DB_DIALECT %q", c.Database.Dialect)
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

// splitList flattens a YAML sequence or a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
