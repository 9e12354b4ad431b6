package meta

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteBasicSchema(t *testing.T) {
	var buf bytes.Buffer
	info := Info{Lines: 3, LineLength: 5}

	if err := Write(&buf, SchemaBasic, info); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != "3\n5\n" {
		t.Errorf("Expected %q, got %q", "3\n5\n", got)
	}
}

func TestWriteExtendedSchema(t *testing.T) {
	var buf bytes.Buffer
	info := Info{Lines: 10000000, LineLength: 100, FileSize: 1000000000, FileName: "workload.txt"}

	if err := Write(&buf, SchemaExtended, info); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "10000000\n100\n1000000000\nworkload.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	info := Info{
		Lines:      42,
		LineLength: 7,
		FileSize:   294,
		FileName:   "small.txt",
		Checksum:   0xdeadbeefcafe,
	}

	var buf bytes.Buffer
	if err := Write(&buf, SchemaChecksum, info); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(&buf, SchemaChecksum)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != info {
		t.Errorf("Round trip mismatch: wrote %+v, read %+v", info, got)
	}
}

func TestReadTruncated(t *testing.T) {
	_, err := Read(strings.NewReader("3\n"), SchemaBasic)
	if err == nil {
		t.Fatal("Expected error for truncated meta")
	}
	if !strings.Contains(err.Error(), "lineLength") {
		t.Errorf("Expected missing-field error naming lineLength, got %v", err)
	}
}

func TestReadBadInteger(t *testing.T) {
	_, err := Read(strings.NewReader("three\n5\n"), SchemaBasic)
	if err == nil {
		t.Fatal("Expected error for non-integer lines field")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.meta")
	info := Info{Lines: 1000, LineLength: 80, FileSize: 80000, FileName: "workload.txt"}

	if err := WriteFile(path, SchemaExtended, info); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path, SchemaExtended)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != info {
		t.Errorf("Round trip mismatch: wrote %+v, read %+v", info, got)
	}
}

func TestSchemaByName(t *testing.T) {
	for name, want := range map[string]int{"basic": 2, "extended": 4, "checksum": 5} {
		schema, err := SchemaByName(name)
		if err != nil {
			t.Errorf("SchemaByName(%q) failed: %v", name, err)
			continue
		}
		if len(schema) != want {
			t.Errorf("Schema %q: expected %d fields, got %d", name, want, len(schema))
		}
	}

	if _, err := SchemaByName("bogus"); err == nil {
		t.Error("Expected error for unknown schema name")
	}
}

func TestSchemaHas(t *testing.T) {
	if !SchemaChecksum.Has(FieldChecksum) {
		t.Error("SchemaChecksum should carry the checksum field")
	}
	if SchemaBasic.Has(FieldFileName) {
		t.Error("SchemaBasic should not carry the fileName field")
	}
}
