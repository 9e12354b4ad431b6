// Package meta reads and writes the workload metadata sidecar: one value per
// line, in a fixed order chosen by a Schema, so a consumer can learn the shape
// of the workload file without re-scanning it.
package meta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Field names a single metadata value.
type Field string

const (
	FieldLines      Field = "lines"
	FieldLineLength Field = "lineLength"
	FieldFileSize   Field = "fileSize"
	FieldFileName   Field = "fileName"
	FieldChecksum   Field = "checksum"
)

// Schema is the ordered list of fields a sidecar carries. The small and large
// workload variants are the same writer with different schemas.
type Schema []Field

// Has reports whether the schema carries the given field.
func (s Schema) Has(field Field) bool {
	for _, f := range s {
		if f == field {
			return true
		}
	}
	return false
}

var (
	// SchemaBasic is the small-variant sidecar: line count and line length only.
	SchemaBasic = Schema{FieldLines, FieldLineLength}

	// SchemaExtended adds the logical size and the workload file name.
	SchemaExtended = Schema{FieldLines, FieldLineLength, FieldFileSize, FieldFileName}

	// SchemaChecksum extends SchemaExtended with an xxhash64 content digest.
	SchemaChecksum = Schema{FieldLines, FieldLineLength, FieldFileSize, FieldFileName, FieldChecksum}
)

// SchemaByName resolves a schema selector as used by the CLI.
func SchemaByName(name string) (Schema, error) {
	switch name {
	case "basic":
		return SchemaBasic, nil
	case "extended":
		return SchemaExtended, nil
	case "checksum":
		return SchemaChecksum, nil
	}
	return nil, fmt.Errorf("unknown meta schema: %s", name)
}

// Info holds the values a sidecar can record. FileSize is the logical
// character count (lines * lineLength, quotes included, newlines excluded)
// and is recorded verbatim, never recomputed from disk.
type Info struct {
	Lines      int64
	LineLength int
	FileSize   int64
	FileName   string
	Checksum   uint64
}

// Write emits one value per line in schema order.
func Write(w io.Writer, schema Schema, info Info) error {
	for _, field := range schema {
		var line string
		switch field {
		case FieldLines:
			line = strconv.FormatInt(info.Lines, 10)
		case FieldLineLength:
			line = strconv.Itoa(info.LineLength)
		case FieldFileSize:
			line = strconv.FormatInt(info.FileSize, 10)
		case FieldFileName:
			line = info.FileName
		case FieldChecksum:
			line = strconv.FormatUint(info.Checksum, 16)
		default:
			return fmt.Errorf("unknown meta field: %s", field)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the sidecar to path, overwriting any existing file.
func WriteFile(path string, schema Schema, info Info) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create meta file: %w", err)
	}
	if err := Write(f, schema, info); err != nil {
		f.Close()
		return fmt.Errorf("write meta file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close meta file: %w", err)
	}
	return nil
}

// Read parses a sidecar written with the given schema.
func Read(r io.Reader, schema Schema) (Info, error) {
	var info Info
	scanner := bufio.NewScanner(r)
	for _, field := range schema {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return info, err
			}
			return info, fmt.Errorf("meta file truncated: missing field %s", field)
		}
		line := scanner.Text()

		var err error
		switch field {
		case FieldLines:
			info.Lines, err = strconv.ParseInt(line, 10, 64)
		case FieldLineLength:
			info.LineLength, err = strconv.Atoi(line)
		case FieldFileSize:
			info.FileSize, err = strconv.ParseInt(line, 10, 64)
		case FieldFileName:
			info.FileName = line
		case FieldChecksum:
			info.Checksum, err = strconv.ParseUint(line, 16, 64)
		default:
			err = fmt.Errorf("unknown meta field: %s", field)
		}
		if err != nil {
			return info, fmt.Errorf("meta field %s: %w", field, err)
		}
	}
	return info, nil
}

// ReadFile parses the sidecar at path.
func ReadFile(path string, schema Schema) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open meta file: %w", err)
	}
	defer f.Close()
	return Read(f, schema)
}
