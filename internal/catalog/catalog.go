// Package catalog keeps a local record of workload generation runs using
// bbolt, so a benchmark harness can discover which fixtures exist and how
// they were produced without re-scanning them.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	"pkg.jsn.cam/workgen/pkg/workgen"
)

var (
	// Bucket names
	runsBucket = []byte("runs")
	infoBucket = []byte("info")
)

var versionKey = []byte("version")

// Run records one generation run.
type Run struct {
	ID           string    `json:"id"`
	WorkloadPath string    `json:"workload_path"`
	MetaPath     string    `json:"meta_path"`
	Generator    string    `json:"generator"`
	Lines        int64     `json:"lines"`
	LineLength   int       `json:"line_length"`
	FileSize     int64     `json:"file_size"`
	BytesOnDisk  int64     `json:"bytes_on_disk"`
	Checksum     string    `json:"checksum"`
	Version      string    `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
}

// Catalog is a bbolt-backed run catalog
type Catalog struct {
	db   *bbolt.DB
	path string
}

// Open opens (or creates) the catalog at dbPath and refuses databases
// written by an incompatible major version.
func Open(dbPath string) (*Catalog, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(runsBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucketIfNotExists(infoBucket)
		if err != nil {
			return err
		}

		stored := b.Get(versionKey)
		if stored == nil {
			return b.Put(versionKey, []byte(workgen.CatalogVersion))
		}
		ok, err := workgen.IsCompatibleVersion(string(stored), workgen.CatalogVersion)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", workgen.ErrIncompatibleVersion,
				workgen.GetCompatibilityError(string(stored), workgen.CatalogVersion))
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db:   db,
		path: dbPath,
	}, nil
}

// Close closes the database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores a run, assigning an ID, timestamp, and format version when
// absent, and returns the stored value.
func (c *Catalog) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if run.Version == "" {
		run.Version = workgen.CatalogVersion
	}

	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(runsBucket)

		encoded, err := json.Marshal(run)
		if err != nil {
			return err
		}
		return b.Put([]byte(run.ID), encoded)
	})
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// Get retrieves a run by ID
func (c *Catalog) Get(id string) (Run, bool) {
	var run Run
	var found bool

	c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(runsBucket)
		if v := b.Get([]byte(id)); v != nil {
			if err := json.Unmarshal(v, &run); err == nil {
				found = true
			}
		}
		return nil
	})

	return run, found
}

// List returns all recorded runs, oldest first
func (c *Catalog) List() ([]Run, error) {
	var runs []Run

	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(runsBucket)
		return b.ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("decode run %s: %w", k, err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}

// Stats returns catalog statistics
func (c *Catalog) Stats() map[string]interface{} {
	stats := make(map[string]interface{})

	c.db.View(func(tx *bbolt.Tx) error {
		runCount := 0
		var totalBytes int64

		b := tx.Bucket(runsBucket)
		b.ForEach(func(k, v []byte) error {
			runCount++
			var run Run
			if err := json.Unmarshal(v, &run); err == nil {
				totalBytes += run.BytesOnDisk
			}
			return nil
		})

		stats["runs"] = runCount
		stats["workload_bytes"] = totalBytes
		stats["db_path"] = c.path
		stats["db_size_bytes"] = c.getFileSize()

		return nil
	})

	return stats
}

func (c *Catalog) getFileSize() int64 {
	info, err := os.Stat(c.path)
	if err != nil {
		return 0
	}
	return info.Size()
}
