package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/database"
	"lookup-console/internal/models"
	"lookup-console/internal/repositories"
)

func setupAuditDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audit.db")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", path)

	db, err := database.New(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path})
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.AutoMigrate(); err != nil {
		t.Fatal(err)
	}

	repo := repositories.NewAuditLogRepository(db.DB)
	entries := []*models.AuditLog{
		{ConsoleID: "console-1", Operator: "Juan", Action: models.AuditActionLogin, Outcome: models.AuditOutcomeSuccess},
		{ConsoleID: "console-1", Operator: "Juan", Action: models.AuditActionSearch, Outcome: models.AuditOutcomeFailed},
		{ConsoleID: "console-2", Action: models.AuditActionExport, Outcome: models.AuditOutcomeBlocked, CreatedAt: time.Now().Add(-48 * time.Hour)},
	}
	for _, e := range entries {
		if err := repo.Create(e); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("1.2.3", "2026-10-17")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "lookup-console 1.2.3 (2026-10-17)\n" {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestAuditList(t *testing.T) {
	setupAuditDB(t)

	out, err := execute(t, "audit", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "TIME") || !strings.Contains(out, "console-2") {
		t.Fatalf("missing rows: %q", out)
	}
	if !strings.Contains(out, "3 of 3 entries") {
		t.Fatalf("unexpected total: %q", out)
	}

	out, err = execute(t, "audit", "list", "--console", "console-1", "--action", models.AuditActionSearch)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1 of 1 entries") || strings.Contains(out, "console-2") {
		t.Fatalf("filter not applied: %q", out)
	}
}

func TestAuditList_InvalidAction(t *testing.T) {
	setupAuditDB(t)

	if _, err := execute(t, "audit", "list", "--action", "transfer"); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}

func TestAuditPurge(t *testing.T) {
	setupAuditDB(t)

	out, err := execute(t, "audit", "purge", "--older-than", "24h")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "deleted 1 entries") {
		t.Fatalf("unexpected purge output: %q", out)
	}

	out, err = execute(t, "audit", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2 of 2 entries") {
		t.Fatalf("purge left wrong rows: %q", out)
	}
}

func TestMigrateUp_SQLite(t *testing.T) {
	setupAuditDB(t)

	out, err := execute(t, "migrate", "up")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "schema up to date") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMigrateStatus_RequiresPostgres(t *testing.T) {
	setupAuditDB(t)

	_, err := execute(t, "migrate", "status")
	if err == nil || !strings.Contains(err.Error(), "DB_DRIVER=postgres") {
		t.Fatalf("expected postgres requirement, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CONSOLE_CLI_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONSOLE_CLI_TEST_VALUE", "")
	os.Unsetenv("CONSOLE_CLI_TEST_VALUE")

	if err := loadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("CONSOLE_CLI_TEST_VALUE"); got != "from-file" {
		t.Fatalf("got %q", got)
	}
}
