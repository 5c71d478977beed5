package dataset

import (
	"errors"
	"testing"
)

func TestRecordGet(t *testing.T) {
	table := NewTable("test", []string{"ID", "Name", "Price"}, [][]string{
		{"1", "Shirt", "₹499"},
		{"2", "", "NaN"},
		{"3"},
	})

	if table.Len() != 3 {
		t.Fatalf("Expected 3 records, got %d", table.Len())
	}

	if v, ok := table.Records[0].Get("Name"); !ok || v != "Shirt" {
		t.Errorf("Expected 'Shirt', got '%s' (ok=%v)", v, ok)
	}
	if _, ok := table.Records[1].Get("Name"); ok {
		t.Error("Expected empty cell to be absent")
	}
	if _, ok := table.Records[1].Get("Price"); ok {
		t.Error("Expected NaN cell to be absent")
	}
	if _, ok := table.Records[2].Get("Price"); ok {
		t.Error("Expected short row to pad with absent cells")
	}
	if _, ok := table.Records[0].Get("Rating"); ok {
		t.Error("Expected missing column to be absent")
	}
	if _, ok := table.Records[0].Get("name"); ok {
		t.Error("Expected case-sensitive lookup before FoldCase")
	}
}

func TestFoldCase(t *testing.T) {
	table := NewTable("test", []string{"Product_Name", "PRICE"}, [][]string{{"Sofa", "100"}}).FoldCase()

	if v, ok := table.Records[0].Get("product_name"); !ok || v != "Sofa" {
		t.Errorf("Expected 'Sofa', got '%s' (ok=%v)", v, ok)
	}
	if !table.HasColumn("price") {
		t.Error("Expected case-insensitive HasColumn")
	}
}

func TestGetPtr(t *testing.T) {
	table := NewTable("test", []string{"a", "b"}, [][]string{{"x", ""}})

	if p := table.Records[0].GetPtr("a"); p == nil || *p != "x" {
		t.Errorf("Expected pointer to 'x', got %v", p)
	}
	if p := table.Records[0].GetPtr("b"); p != nil {
		t.Errorf("Expected nil for empty cell, got %q", *p)
	}
}

func TestRequire(t *testing.T) {
	table := NewTable("khaadi_data", []string{"ID", "Price"}, nil)

	if err := table.Require("ID", "Price"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	err := table.Require("ID", "Product Name", "Img Path")
	if err == nil {
		t.Fatal("Expected error for missing columns")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestSubset(t *testing.T) {
	table := NewTable("test", []string{"Id"}, [][]string{{"a"}, {"b"}, {"c"}}).FoldCase()

	subset := table.Subset([]int{2, 0})
	if subset.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", subset.Len())
	}
	if v, _ := subset.Records[0].Get("id"); v != "c" {
		t.Errorf("Expected 'c', got '%s'", v)
	}
	if v, _ := subset.Records[1].Get("id"); v != "a" {
		t.Errorf("Expected 'a', got '%s'", v)
	}
}
