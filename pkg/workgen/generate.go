// Package workgen produces flat-text workload fixtures for string matching
// benchmarks: a file of fixed-width quoted random-letter lines plus a
// metadata sidecar describing it.
package workgen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"pkg.jsn.cam/workgen/pkg/workgen/generator"
	"pkg.jsn.cam/workgen/pkg/workgen/meta"
)

// Config holds the parameters of a single generation run.
type Config struct {
	// Lines is the number of workload records to write. Zero is allowed and
	// produces an empty workload; negative is a configuration error.
	Lines int64

	// LineLength is the exact width of each record including the two framing
	// quotes but excluding the newline terminator. Must be at least 2.
	LineLength int

	// WorkloadPath and MetaPath are the output files, overwritten if present.
	// WorkloadPath defaults to "workload.txt"; MetaPath defaults to the
	// workload path with a ".meta" extension.
	WorkloadPath string
	MetaPath     string

	// Schema selects the sidecar fields. Defaults to meta.SchemaExtended.
	Schema meta.Schema

	// Generator names a registered line generator. Defaults to "quoted".
	Generator string

	// Seed makes generation reproducible. Nil preserves the historical
	// behavior of an unseeded, non-deterministic source.
	Seed *uint64

	// OnProgress, if set, is called periodically with the number of lines
	// written so far, and once more on completion.
	OnProgress func(done int64)
}

const progressInterval = 1 << 16

// Validate rejects impossible configurations before any I/O begins.
func (c *Config) Validate() error {
	if c.LineLength < 2 {
		return fmt.Errorf("%w: got %d", ErrLineTooShort, c.LineLength)
	}
	if c.Lines < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeLineCount, c.Lines)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.WorkloadPath == "" {
		c.WorkloadPath = "workload.txt"
	}
	if c.MetaPath == "" {
		ext := filepath.Ext(c.WorkloadPath)
		c.MetaPath = strings.TrimSuffix(c.WorkloadPath, ext) + ".meta"
	}
	if c.Schema == nil {
		c.Schema = meta.SchemaExtended
	}
	if c.Generator == "" {
		c.Generator = "quoted"
	}
	return c
}

// Result describes a completed generation run.
type Result struct {
	WorkloadPath string
	MetaPath     string
	Lines        int64
	LineLength   int

	// FileSize is the logical character count recorded in the sidecar:
	// Lines * LineLength. The newline terminators are not counted, so the
	// true on-disk size is BytesOnDisk.
	FileSize    int64
	BytesOnDisk int64

	Checksum uint64
	Elapsed  time.Duration
}

// Generate writes the workload file and then its metadata sidecar, strictly
// in that order. On error the run aborts; partial output files are left
// behind, matching the historical behavior of no cleanup.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	gen, err := generator.Get(cfg.Generator, cfg.LineLength)
	if err != nil {
		return nil, err
	}
	gen.Init(rand.New(newSource(cfg.Seed)))

	start := time.Now()
	digest := xxhash.New()
	if err := writeWorkload(cfg, gen, digest); err != nil {
		return nil, err
	}

	info := meta.Info{
		Lines:      cfg.Lines,
		LineLength: cfg.LineLength,
		FileSize:   cfg.Lines * int64(cfg.LineLength),
		FileName:   filepath.Base(cfg.WorkloadPath),
		Checksum:   digest.Sum64(),
	}
	if err := meta.WriteFile(cfg.MetaPath, cfg.Schema, info); err != nil {
		return nil, err
	}

	return &Result{
		WorkloadPath: cfg.WorkloadPath,
		MetaPath:     cfg.MetaPath,
		Lines:        cfg.Lines,
		LineLength:   cfg.LineLength,
		FileSize:     info.FileSize,
		BytesOnDisk:  cfg.Lines * int64(cfg.LineLength+1),
		Checksum:     info.Checksum,
		Elapsed:      time.Since(start),
	}, nil
}

// writeWorkload streams all lines through the checksum digest into the
// workload file. The file is fully written and closed before the caller
// touches the sidecar.
func writeWorkload(cfg Config, gen generator.Generator, digest io.Writer) error {
	f, err := os.Create(cfg.WorkloadPath)
	if err != nil {
		return fmt.Errorf("create workload file: %w", err)
	}

	buf := bufio.NewWriterSize(f, 256*1024)
	w := io.MultiWriter(buf, digest)

	for i := int64(0); i < cfg.Lines; i++ {
		if err := gen.WriteLine(w); err != nil {
			f.Close()
			return fmt.Errorf("write workload line %d: %w", i, err)
		}
		if cfg.OnProgress != nil && (i+1)%progressInterval == 0 {
			cfg.OnProgress(i + 1)
		}
	}

	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush workload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close workload file: %w", err)
	}
	if cfg.OnProgress != nil {
		cfg.OnProgress(cfg.Lines)
	}
	return nil
}

func newSource(seed *uint64) rand.Source {
	if seed != nil {
		return rand.NewPCG(*seed, *seed)
	}
	return rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())
}
