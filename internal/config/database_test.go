package config

import (
	"strings"
	"testing"
)

func TestDatabaseConfigFromEnv(t *testing.T) {
	t.Setenv("SB_DB_DRIVER", "postgres")
	t.Setenv("SB_DB_HOST", "db.internal")
	t.Setenv("SB_DB_PORT", "15432")
	t.Setenv("SB_DB_USERNAME", "etl")
	t.Setenv("SB_DB_PASSWORD", "secret")
	t.Setenv("SB_DB_DATABASE", "tailoring")

	cfg := DatabaseConfigFromEnv()
	if cfg.Driver != DriverPostgres || cfg.Host != "db.internal" || cfg.Port != 15432 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		t.Fatalf("DSN() error: %v", err)
	}
	for _, want := range []string{"host=db.internal", "port=15432", "user=etl", "dbname=tailoring", "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q missing %q", dsn, want)
		}
	}
}

func TestDatabaseConfigSQLiteDefaults(t *testing.T) {
	t.Setenv("SB_DB_DRIVER", "")
	cfg := DatabaseConfigFromEnv()
	if cfg.Driver != DriverSQLite {
		t.Errorf("default driver = %q, want sqlite", cfg.Driver)
	}

	cfg.Path = "run.db"
	dsn, err := cfg.DSN()
	if err != nil {
		t.Fatalf("DSN() error: %v", err)
	}
	if dsn != "run.db" {
		t.Errorf("sqlite DSN = %q, want the file path", dsn)
	}
}

func TestDatabaseConfigUnknownDriver(t *testing.T) {
	cfg := DatabaseConfig{Driver: "oracle"}
	if _, err := cfg.DSN(); err == nil {
		t.Error("DSN() should reject unknown drivers")
	}
}
