package layout

import "testing"

func TestDetectDirection_LTR(t *testing.T) {
	if got := DetectDirection("Hello world"); got != DirectionLTR {
		t.Errorf("DetectDirection(english) = %v, want LTR", got)
	}
}

func TestDetectDirection_RTL(t *testing.T) {
	if got := DetectDirection("مرحبا بالعالم"); got != DirectionRTL {
		t.Errorf("DetectDirection(arabic) = %v, want RTL", got)
	}
}

func TestWritingDirection_UAX9RoundTrip(t *testing.T) {
	for _, d := range []WritingDirection{DirectionLTR, DirectionRTL, DirectionAuto} {
		if got := fromUAX9Direction(d.UAX9()); got != d {
			t.Errorf("round trip through uax9 changed %v into %v", d, got)
		}
	}
}
