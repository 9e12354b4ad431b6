package workgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"pkg.jsn.cam/workgen/pkg/workgen/meta"
)

// Report describes a successful verification pass.
type Report struct {
	Lines      int64
	LineLength int
	Checksum   uint64
	Elapsed    time.Duration
}

// Verify streams a workload file and checks it against its metadata sidecar:
// exact line count and width, quote framing, lowercase-only payload, and,
// when the schema records one, the content checksum. The first mismatch
// fails with a positioned error.
func Verify(workloadPath, metaPath string, schema meta.Schema) (*Report, error) {
	if schema == nil {
		schema = meta.SchemaExtended
	}

	info, err := meta.ReadFile(metaPath, schema)
	if err != nil {
		return nil, err
	}
	if schema.Has(meta.FieldFileName) && info.FileName != filepath.Base(workloadPath) {
		return nil, fmt.Errorf("%w: meta records %q, verifying %q",
			ErrFileNameMismatch, info.FileName, filepath.Base(workloadPath))
	}
	if schema.Has(meta.FieldFileSize) && info.FileSize != info.Lines*int64(info.LineLength) {
		return nil, fmt.Errorf("%w: meta records %d, lines*lineLength is %d",
			ErrFileSizeMismatch, info.FileSize, info.Lines*int64(info.LineLength))
	}

	f, err := os.Open(workloadPath)
	if err != nil {
		return nil, fmt.Errorf("open workload file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	digest := xxhash.New()

	scanner := bufio.NewScanner(bufio.NewReaderSize(f, 256*1024))
	if info.LineLength+16 > bufio.MaxScanTokenSize {
		scanner.Buffer(make([]byte, info.LineLength+16), info.LineLength+16)
	}

	var count int64
	for scanner.Scan() {
		line := scanner.Bytes()
		if err := checkLine(line, info.LineLength); err != nil {
			return nil, fmt.Errorf("line %d: %w", count+1, err)
		}
		digest.Write(line)
		digest.Write([]byte{'\n'})
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read workload file: %w", err)
	}

	if count != info.Lines {
		return nil, fmt.Errorf("%w: meta records %d, file has %d", ErrLineCountMismatch, info.Lines, count)
	}
	if schema.Has(meta.FieldChecksum) && digest.Sum64() != info.Checksum {
		return nil, fmt.Errorf("%w: meta records %x, file hashes to %x",
			ErrChecksumMismatch, info.Checksum, digest.Sum64())
	}

	return &Report{
		Lines:      count,
		LineLength: info.LineLength,
		Checksum:   digest.Sum64(),
		Elapsed:    time.Since(start),
	}, nil
}

func checkLine(line []byte, lineLength int) error {
	if len(line) != lineLength {
		return fmt.Errorf("%w: want %d characters, got %d", ErrLineWidthMismatch, lineLength, len(line))
	}
	if line[0] != '"' || line[len(line)-1] != '"' {
		return fmt.Errorf("%w: missing quote frame", ErrMalformedLine)
	}
	for i := 1; i < len(line)-1; i++ {
		if line[i] < 'a' || line[i] > 'z' {
			return fmt.Errorf("%w: non-lowercase byte %q at column %d", ErrMalformedLine, line[i], i)
		}
	}
	return nil
}
