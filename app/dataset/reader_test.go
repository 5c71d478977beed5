package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "khaadi_data.csv")

	content := "\uFEFFID,Product Name,Price\n1,\"Lawn, 3pc\",\"₹2,499\"\n2,Kurta,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := ReadFile(path, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if table.Source != "khaadi_data" {
		t.Errorf("Expected source 'khaadi_data', got '%s'", table.Source)
	}
	if table.Header[0] != "ID" {
		t.Errorf("Expected BOM stripped from header, got %q", table.Header[0])
	}
	if table.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", table.Len())
	}
	if v, _ := table.Records[0].Get("Product Name"); v != "Lawn, 3pc" {
		t.Errorf("Expected quoted field 'Lawn, 3pc', got '%s'", v)
	}
	if v, _ := table.Records[0].Get("Price"); v != "₹2,499" {
		t.Errorf("Expected '₹2,499', got '%s'", v)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ReadOptions{})
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadTooManyFields(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2,3\n"), "bad", ReadOptions{})
	if err == nil {
		t.Error("Expected error for row with more fields than header")
	}
}

func TestReadEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n"} {
		_, err := Read(strings.NewReader(input), "empty", ReadOptions{})
		if !errors.Is(err, ErrNoHeader) {
			t.Errorf("Expected ErrNoHeader for %q, got %v", input, err)
		}
	}
}

func TestReadHeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("a,b\n"), "header", ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Errorf("Expected 0 records, got %d", table.Len())
	}
}

func TestReadWindows1252(t *testing.T) {
	// "Café" with é as the single byte 0xE9.
	input := "name\nCaf\xe9\n"

	table, err := Read(strings.NewReader(input), "legacy", ReadOptions{Encoding: "windows-1252"})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := table.Records[0].Get("name"); v != "Café" {
		t.Errorf("Expected 'Café', got '%s'", v)
	}
}

func TestReadUnknownEncoding(t *testing.T) {
	_, err := Read(strings.NewReader("a\n1\n"), "x", ReadOptions{Encoding: "klingon"})
	if err == nil {
		t.Error("Expected error for unknown encoding")
	}
}
