package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
			"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
			"010_tenth.sql":  {Data: []byte("CREATE TABLE c (id INTEGER);")},
		}
		r := NewRunner(openTestDB(t), fsys)

		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() returned unexpected error: %v", err)
		}
		if len(migrations) != 3 {
			t.Fatalf("migrations = %d, want 3", len(migrations))
		}
		wantVersions := []int{1, 2, 10}
		wantNames := []string{"first", "second", "tenth"}
		for i := range migrations {
			if migrations[i].Version != wantVersions[i] || migrations[i].Name != wantNames[i] {
				t.Errorf("migration[%d] = %d %s, want %d %s", i, migrations[i].Version, migrations[i].Name, wantVersions[i], wantNames[i])
			}
		}
	})

	t.Run("non-sql files ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_first.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
			"README.md":     {Data: []byte("notes")},
		}
		r := NewRunner(openTestDB(t), fsys)

		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() returned unexpected error: %v", err)
		}
		if len(migrations) != 1 {
			t.Errorf("migrations = %d, want 1", len(migrations))
		}
	})

	t.Run("malformed filename errors", func(t *testing.T) {
		fsys := fstest.MapFS{
			"badname.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(openTestDB(t), fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() = nil for malformed filename, want error")
		}
	})

	t.Run("duplicate version errors", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_one.sql":   {Data: []byte("SELECT 1;")},
			"001_other.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(openTestDB(t), fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() = nil for duplicate version, want error")
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE pets_test (id TEXT PRIMARY KEY);")},
		"002_extend.sql": {Data: []byte("ALTER TABLE pets_test ADD COLUMN name TEXT;")},
	}

	t.Run("applies all pending and bumps version", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)

		applied, err := r.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() returned unexpected error: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := r.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion() returned unexpected error: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}

		if _, err := db.Exec("INSERT INTO pets_test (id, name) VALUES ('p1', 'Rex')"); err != nil {
			t.Errorf("migrated schema unusable: %v", err)
		}
	})

	t.Run("rerun is a no-op", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)

		if _, err := r.ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations() returned unexpected error: %v", err)
		}
		applied, err := r.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() rerun returned unexpected error: %v", err)
		}
		if applied != 0 {
			t.Errorf("rerun applied = %d, want 0", applied)
		}
	})

	t.Run("failing migration rolls back", func(t *testing.T) {
		db := openTestDB(t)
		bad := fstest.MapFS{
			"001_bad.sql": {Data: []byte("CREATE TABLE broken (;")},
		}
		r := NewRunner(db, bad)

		if _, err := r.ApplyMigrations(nil); err == nil {
			t.Fatal("ApplyMigrations() = nil for broken SQL, want error")
		}
		version, err := r.CurrentVersion()
		if err != nil {
			t.Fatalf("CurrentVersion() returned unexpected error: %v", err)
		}
		if version != 0 {
			t.Errorf("version after rollback = %d, want 0", version)
		}
	})
}

func TestValidateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE t (id TEXT);")},
	}

	t.Run("up to date passes", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)
		if _, err := r.ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations() returned unexpected error: %v", err)
		}
		if err := r.ValidateVersion(); err != nil {
			t.Errorf("ValidateVersion() = %v, want nil", err)
		}
	})

	t.Run("newer database rejected", func(t *testing.T) {
		db := openTestDB(t)
		r := NewRunner(db, fsys)
		if _, err := r.ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations() returned unexpected error: %v", err)
		}
		if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
			t.Fatalf("failed to bump version: %v", err)
		}
		if err := r.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() = nil for newer schema, want error")
		}
	})
}
