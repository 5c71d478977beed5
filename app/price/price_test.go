package price

import (
	"math"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"plain number", "499", 499, true},
		{"rupee with thousands", "₹12,345.50", 12345.50, true},
		{"mis-encoded rupee", "â‚¹1,299", 1299, true},
		{"surrounding whitespace", "  ₹ 799.00 ", 799, true},
		{"negative", "-5", -5, true},
		{"empty", "", 0, false},
		{"symbol only", "₹", 0, false},
		{"garbage", "abc", 0, false},
		{"range", "100-200", 0, false},
		{"nan text", "nan", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v for %q, got %v", tt.ok, tt.input, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Expected %v for %q, got %v", tt.expected, tt.input, got)
			}
		})
	}
}

func TestNormalizePassesNumbersThrough(t *testing.T) {
	if got, ok := Normalize(499.0); !ok || got != 499.0 {
		t.Errorf("Expected 499.0, got %v (ok=%v)", got, ok)
	}
	if got, ok := Normalize(42); !ok || got != 42 {
		t.Errorf("Expected 42, got %v (ok=%v)", got, ok)
	}
	if got, ok := Normalize(int64(7)); !ok || got != 7 {
		t.Errorf("Expected 7, got %v (ok=%v)", got, ok)
	}
}

func TestNormalizeAbsent(t *testing.T) {
	var nilString *string
	var nilFloat *float64

	inputs := []any{nil, math.NaN(), nilString, nilFloat, struct{}{}, []string{"1"}}
	for _, input := range inputs {
		if _, ok := Normalize(input); ok {
			t.Errorf("Expected %#v to be absent", input)
		}
	}
}

func TestNormalizePointers(t *testing.T) {
	s := "₹1,000"
	if got, ok := Normalize(&s); !ok || got != 1000 {
		t.Errorf("Expected 1000, got %v (ok=%v)", got, ok)
	}

	f := 2.5
	if got, ok := Normalize(&f); !ok || got != 2.5 {
		t.Errorf("Expected 2.5, got %v (ok=%v)", got, ok)
	}
}

func TestRupeeMojibakeMatchesWindows1252(t *testing.T) {
	decoded, err := charmap.Windows1252.NewDecoder().String(rupee)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != rupeeMojibake {
		t.Errorf("Expected mis-encoded rupee %q, got %q", rupeeMojibake, decoded)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{999, "999.0"},
		{12345.5, "12345.5"},
		{0, "0.0"},
		{-3, "-3.0"},
		{4.25, "4.25"},
		{math.Inf(1), "inf"},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.expected {
			t.Errorf("Expected %q for %v, got %q", tt.expected, tt.input, got)
		}
	}

	if got := FormatPtr(nil); got != "" {
		t.Errorf("Expected empty cell for nil, got %q", got)
	}
}
