package layout

import (
	"testing"
)

func TestHyphenate(t *testing.T) {
	dict := NewEnglishHyphenation()

	tests := []struct {
		name         string
		word         string
		expectPoints bool
	}{
		{"example", "example", true},
		{"table", "table", true},
		{"record", "record", true},
		{"present", "present", true},
		{"project", "project", true},
		{"computer", "computer", true},
		{"algorithm", "algorithm", true},
		{"hyphenation", "hyphenation", true},
		{"pattern", "pattern", true},
		{"Short word", "cat", false},
		{"Two letters", "to", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := dict.Hyphenate(tt.word)

			if !tt.expectPoints && len(points) > 0 {
				t.Errorf("expected no hyphenation points for %q, got %v", tt.word, points)
			}

			for _, point := range points {
				if point < 0 || point >= len(tt.word) {
					t.Errorf("invalid hyphenation point %d for word %q (len=%d)", point, tt.word, len(tt.word))
				}
				if point < dict.minLeft {
					t.Errorf("point %d violates minLeft=%d for word %q", point, dict.minLeft, tt.word)
				}
				if point > len(tt.word)-dict.minRight {
					t.Errorf("point %d violates minRight=%d for word %q", point, dict.minRight, tt.word)
				}
			}
		})
	}
}

func TestHyphenateWithString(t *testing.T) {
	dict := NewEnglishHyphenation()

	tests := []struct {
		name   string
		word   string
		hyphen string
	}{
		{"standard hyphen", "example", "-"},
		{"soft hyphen", "example", "­"},
		{"custom marker", "table", "|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dict.HyphenateWithString(tt.word, tt.hyphen)
			if !containsAllLetters(result, tt.word) {
				t.Errorf("HyphenateWithString lost letters: %q -> %q", tt.word, result)
			}

			points := dict.Hyphenate(tt.word)
			if len(points) > 0 {
				if got := countOccurrences(result, tt.hyphen); got != len(points) {
					t.Errorf("expected %d hyphens in %q, got %d", len(points), result, got)
				}
			}
		})
	}
}

func TestHyphenateMinConstraints(t *testing.T) {
	dict := NewEnglishHyphenation()

	word := "testing"
	points := dict.Hyphenate(word)
	for _, point := range points {
		if point < dict.minLeft {
			t.Errorf("point %d violates minLeft=%d", point, dict.minLeft)
		}
		if point > len(word)-dict.minRight {
			t.Errorf("point %d violates minRight=%d", point, dict.minRight)
		}
	}
}

func TestHyphenationDictionaryImplementsHyphenator(t *testing.T) {
	var h Hyphenator = NewEnglishHyphenation()
	if points := h.HyphenationPoints("information"); len(points) == 0 {
		t.Error("expected HyphenationPoints to delegate to Hyphenate and find at least one break in \"information\"")
	}
}

func containsAllLetters(result, original string) bool {
	letterCount := 0
	for _, ch := range original {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			letterCount++
		}
	}
	resultLetters := 0
	for _, ch := range result {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			resultLetters++
		}
	}
	return resultLetters >= letterCount
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}

func BenchmarkHyphenate(b *testing.B) {
	dict := NewEnglishHyphenation()
	word := "internationalization"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Hyphenate(word)
	}
}
