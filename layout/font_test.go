package layout

import "testing"

func TestNewFontInfo_Valid(t *testing.T) {
	f, err := NewFontInfo("Arial", 12, WeightBold, StyleItalic, RGBColor{R: 10, G: 20, B: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Family != "Arial" || f.Size != 12 || f.Weight != WeightBold || f.Style != StyleItalic {
		t.Errorf("got %+v", f)
	}
}

func TestNewFontInfo_ZeroSizeRejected(t *testing.T) {
	if _, err := NewFontInfo("Arial", 0, WeightNormal, StyleNormal, RGBColor{}); err == nil {
		t.Fatal("expected an error for zero size")
	}
}

func TestNewFontInfo_NegativeSizeRejected(t *testing.T) {
	if _, err := NewFontInfo("Arial", -1, WeightNormal, StyleNormal, RGBColor{}); err == nil {
		t.Fatal("expected an error for negative size")
	}
}

func TestNewFontInfo_DefaultsWeightAndStyle(t *testing.T) {
	f, err := NewFontInfo("Arial", 12, "", "", RGBColor{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Weight != WeightNormal {
		t.Errorf("Weight = %q, want default %q", f.Weight, WeightNormal)
	}
	if f.Style != StyleNormal {
		t.Errorf("Style = %q, want default %q", f.Style, StyleNormal)
	}
}

func TestFontInfo_WithSize(t *testing.T) {
	f, err := NewFontInfo("Arial", 12, WeightNormal, StyleNormal, RGBColor{})
	if err != nil {
		t.Fatal(err)
	}
	scaled := f.WithSize(9.6)
	if scaled.Size != 9.6 {
		t.Errorf("Size = %f, want 9.6", scaled.Size)
	}
	if scaled.Family != f.Family || scaled.Weight != f.Weight || scaled.Style != f.Style || scaled.Color != f.Color {
		t.Error("WithSize must preserve every other field")
	}
	if f.Size != 12 {
		t.Error("WithSize must not mutate the receiver")
	}
}
