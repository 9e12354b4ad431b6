package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.etcd.io/bbolt"
	"pkg.jsn.cam/workgen/pkg/workgen"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Open(filepath.Join(t.TempDir(), "var", "catalog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { cat.Close() })
	return cat
}

func TestRecordAssignsDefaults(t *testing.T) {
	cat := openTestCatalog(t)

	run, err := cat.Record(Run{
		WorkloadPath: "workload.txt",
		Lines:        1000,
		LineLength:   100,
		FileSize:     100000,
		BytesOnDisk:  101000,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if run.ID == "" {
		t.Error("Expected an assigned run ID")
	}
	if run.CreatedAt.IsZero() {
		t.Error("Expected an assigned timestamp")
	}
	if run.Version != workgen.CatalogVersion {
		t.Errorf("Expected version %s, got %s", workgen.CatalogVersion, run.Version)
	}
}

func TestGetRoundTrip(t *testing.T) {
	cat := openTestCatalog(t)

	stored, err := cat.Record(Run{Lines: 3, LineLength: 5, FileSize: 15})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, found := cat.Get(stored.ID)
	if !found {
		t.Fatalf("Run %s not found", stored.ID)
	}
	if got.Lines != 3 || got.LineLength != 5 || got.FileSize != 15 {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	if _, found := cat.Get("missing"); found {
		t.Error("Expected missing run to not be found")
	}
}

func TestListOrderedByCreation(t *testing.T) {
	cat := openTestCatalog(t)

	base := time.Now().UTC()
	for i := 3; i >= 1; i-- {
		_, err := cat.Record(Run{
			Lines:     int64(i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := cat.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.Before(runs[i-1].CreatedAt) {
			t.Errorf("Runs not ordered by creation time: %v before %v",
				runs[i-1].CreatedAt, runs[i].CreatedAt)
		}
	}
}

func TestStats(t *testing.T) {
	cat := openTestCatalog(t)

	for i := 0; i < 2; i++ {
		if _, err := cat.Record(Run{BytesOnDisk: 500}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stats := cat.Stats()
	if stats["runs"] != 2 {
		t.Errorf("Expected 2 runs, got %v", stats["runs"])
	}
	if stats["workload_bytes"] != int64(1000) {
		t.Errorf("Expected 1000 workload bytes, got %v", stats["workload_bytes"])
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	cat, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	stored, err := cat.Record(Run{Lines: 7})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	cat.Close()

	cat, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer cat.Close()

	if _, found := cat.Get(stored.ID); !found {
		t.Errorf("Run %s lost across reopen", stored.ID)
	}
}

func TestOpenRejectsIncompatibleVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	// Simulate a database written by a future major version.
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(infoBucket)
		if err != nil {
			return err
		}
		return b.Put(versionKey, []byte("v99.0.0"))
	})
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	_, err = Open(path)
	if !errors.Is(err, workgen.ErrIncompatibleVersion) {
		t.Fatalf("Expected ErrIncompatibleVersion, got %v", err)
	}
}
