package postgres

import (
	"context"
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		DBHost:     " db.local ",
		DBPort:     "5433",
		DBName:     "placement",
		DBUser:     "app",
		DBPassword: `p@ss word's\`,
		DBSSLMode:  "disable",
	}

	got := DSN(cfg, "placement-api")
	want := `host='db.local' port='5433' user='app' password='p@ss word\'s\\' dbname='placement' sslmode='disable' application_name='placement-api'`
	if got != want {
		t.Fatalf("unexpected dsn\n got: %s\nwant: %s", got, want)
	}
}

func TestDSN_SkipsEmpty(t *testing.T) {
	got := DSN(config.DatabaseConfig{DBHost: "localhost", DBName: "x"}, "")
	if got != `host='localhost' dbname='x'` {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestPool_NilSafe(t *testing.T) {
	var p *Pool
	if err := p.Close(); err != nil {
		t.Fatalf("close on nil pool: %v", err)
	}
	if _, err := p.Exec(context.Background(), "SELECT 1"); err != ErrNilDB {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
	if err := p.QueryRow(context.Background(), "SELECT 1").Scan(); err != ErrNilDB {
		t.Fatalf("expected ErrNilDB from row, got %v", err)
	}
	if p.SQLDB() != nil {
		t.Fatalf("expected nil sql db")
	}
}
