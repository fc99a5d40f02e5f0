package db

import (
	"strings"
	"testing"
)

func TestConvertToMigrateURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable", false},
		{"postgresql://u:p@localhost:5432/db", "pgx5://u:p@localhost:5432/db", false},
		{"mysql://u:p@localhost:3306/db", "", true},
		{"host=localhost port=5432", "", true},
	}

	for _, tt := range tests {
		got, err := convertToMigrateURL(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("convertToMigrateURL(%q) = %q, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("convertToMigrateURL(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("convertToMigrateURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migration files")
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected file in migrations: %s", e.Name())
		}
	}
	if ups == 0 || ups != downs {
		t.Errorf("unbalanced migrations: %d up, %d down", ups, downs)
	}
}
