package snapshot

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"visitas360/internal/tracking"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestOpenCreatesWorkspaceDir(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(Config{Workspace: dir})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if _, err := os.Stat(filepath.Join(dir, ".visitas360")); err != nil {
		t.Fatalf("data dir missing: %v", err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if version != 1 {
		t.Fatalf("schema version wrong: %d", version)
	}
}

func TestMigrateResumesFromRecordedVersion(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Exec(`PRAGMA user_version = 99`); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate past recorded version: %v", err)
	}
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if version != 99 {
		t.Fatalf("already-applied steps must not rewind the version, got %d", version)
	}
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	db := newTestDB(t)
	s := NewStore(db)
	ctx := context.Background()

	visits := tracking.SeedVisits()
	reqs := tracking.SeedRequirements()
	if err := s.Save(ctx, visits, reqs); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotVisits, gotReqs, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(gotVisits) != len(visits) || len(gotReqs) != len(reqs) {
		t.Fatalf("sizes wrong: %d/%d visits, %d/%d requirements",
			len(gotVisits), len(visits), len(gotReqs), len(reqs))
	}
	for i := range visits {
		if gotVisits[i].ID != visits[i].ID {
			t.Fatalf("visit order broken at %d: %s vs %s", i, gotVisits[i].ID, visits[i].ID)
		}
	}
	for i := range reqs {
		if gotReqs[i].ID != reqs[i].ID {
			t.Fatalf("requirement order broken at %d: %s vs %s", i, gotReqs[i].ID, reqs[i].ID)
		}
	}

	// Nested records survive the JSON round trip.
	if len(gotReqs[0].History) != len(reqs[0].History) {
		t.Fatalf("history lost: %d vs %d", len(gotReqs[0].History), len(reqs[0].History))
	}
	if gotReqs[0].Status != reqs[0].Status || gotReqs[0].Progress != reqs[0].Progress {
		t.Fatalf("requirement fields lost: %+v", gotReqs[0])
	}
}

func TestSaveReplacesPreviousSet(t *testing.T) {
	db := newTestDB(t)
	s := NewStore(db)
	ctx := context.Background()

	if err := s.Save(ctx, tracking.SeedVisits(), tracking.SeedRequirements()); err != nil {
		t.Fatalf("save: %v", err)
	}
	visits := tracking.SeedVisits()[:1]
	if err := s.Save(ctx, visits, nil); err != nil {
		t.Fatalf("second save: %v", err)
	}

	gotVisits, gotReqs, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(gotVisits) != 1 || len(gotReqs) != 0 {
		t.Fatalf("save must replace, got %d visits %d requirements", len(gotVisits), len(gotReqs))
	}
}

func TestEmpty(t *testing.T) {
	db := newTestDB(t)
	s := NewStore(db)
	ctx := context.Background()

	empty, err := s.Empty(ctx)
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if !empty {
		t.Fatal("fresh database should be empty")
	}

	if err := s.Save(ctx, tracking.SeedVisits(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	empty, err = s.Empty(ctx)
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if empty {
		t.Fatal("database with visits should not be empty")
	}
}
