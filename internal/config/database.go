package config

import "fmt"

// Database drivers supported by the loader.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds the connection settings for the loader. It is built
// once at startup and passed explicitly to every component that needs it;
// nothing reads credentials from the environment after this point.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Path     string // sqlite database file
}

// DatabaseConfigFromEnv reads the SB_DB_* variables, falling back to a local
// sqlite file when no driver is configured.
func DatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Driver:   GetEnv("SB_DB_DRIVER", DriverSQLite),
		Host:     GetEnv("SB_DB_HOST", "localhost"),
		Port:     GetEnvInt("SB_DB_PORT", 5432),
		User:     GetEnv("SB_DB_USERNAME", "tailor"),
		Password: GetEnv("SB_DB_PASSWORD", ""),
		Database: GetEnv("SB_DB_DATABASE", "tailor"),
		Path:     GetEnv("SB_DB_PATH", "tailor.db"),
	}
}

// DSN builds the driver-specific connection string.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Database), nil
	case DriverSQLite:
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}
