package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTablesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_restaurant_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no restaurant_tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS restaurant_tables",
		"FOREIGN KEY (current_customer_id) REFERENCES users(id) ON DELETE SET NULL",
		"CHECK (capacity > 0)",
		"CHECK (status IN ('available', 'occupied', 'reserved'))",
		"DROP TABLE IF EXISTS restaurant_tables",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestUsersMigrationEnforcesUniqueEmail(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_users.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no users migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email") {
		t.Error("missing unique email index")
	}
	if !strings.Contains(content, "CHECK (role IN ('customer', 'manager', 'admin'))") {
		t.Error("missing role check constraint")
	}
}
