package renderer

import "testing"

func TestSentenceSplitter_DoesNotBreakAfterAbbreviation(t *testing.T) {
	s := NewSentenceSplitter()
	sentences := s.Sentences("Dr. Smith is here. He left.")

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestSentenceSplitter_SplitsOnOrdinarySentences(t *testing.T) {
	s := NewSentenceSplitter()
	sentences := s.Sentences("One. Two. Three.")

	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestTruncateToSentenceBoundary_DropsPartialTrailingSentence(t *testing.T) {
	s := NewSentenceSplitter()
	text := "One. Two. Thre"

	got := TruncateToSentenceBoundary(text, s)
	want := "One. Two. "

	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTruncateToSentenceBoundary_NoCompleteSentenceReturnsUnchanged(t *testing.T) {
	s := NewSentenceSplitter()
	text := "incomplete fragment"

	got := TruncateToSentenceBoundary(text, s)
	if got != text {
		t.Fatalf("got %q, want unchanged %q", got, text)
	}
}

func TestTruncateToSentenceBoundary_EndsCleanlyReturnsUnchanged(t *testing.T) {
	s := NewSentenceSplitter()
	text := "One. Two."

	got := TruncateToSentenceBoundary(text, s)
	if got != text {
		t.Fatalf("got %q, want unchanged %q", got, text)
	}
}

func TestApplyEllipsis_NoOverflowReturnsUnchanged(t *testing.T) {
	got := ApplyEllipsis("short", 1000, 10, 0.5)
	if got != "short" {
		t.Fatalf("got %q, want unchanged", got)
	}
}

func TestApplyEllipsis_ClipsAndAppendsEllipsis(t *testing.T) {
	// charWidth = 10*0.5 = 5; 10 chars * 5 = 50 width; maxWidth = 20
	// leaves a budget of 15 after reserving the ellipsis grapheme, i.e.
	// 3 graphemes kept.
	got := ApplyEllipsis("abcdefghij", 20, 10, 0.5)
	want := "abc…"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyEllipsis_ZeroCharWidthReturnsUnchanged(t *testing.T) {
	got := ApplyEllipsis("abc", 10, 0, 0.5)
	if got != "abc" {
		t.Fatalf("got %q, want unchanged", got)
	}
}
