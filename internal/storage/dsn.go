package storage

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/kiokosk/CustomerProjectManagement/config"
)

// DriverName returns the database/sql driver registered for the dialect.
func DriverName(dialect string) string {
	if dialect == config.DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

// DSN builds the connection string for cfg.Dialect. Postgres credentials are
// URL-escaped so any password is safe.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.Dialect == config.DialectSQLite {
		return fmt.Sprintf(
			"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite",
			cfg.Name,
		)
	}

	user := url.User(cfg.User)
	if cfg.Password != "" {
		user = url.UserPassword(cfg.User, cfg.Password)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode(cfg.SSLMode)}}.Encode(),
	}
	return u.String()
}

func sslMode(mode string) string {
	if mode == "" {
		return "disable"
	}
	return mode
}
