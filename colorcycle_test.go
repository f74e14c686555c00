package mazesprite

import (
	"testing"

	"github.com/tanema/gween/ease"
)

var (
	cycleBlue  = RGB{0x21, 0x21, 0xff}
	cycleWhite = RGB{0xff, 0xff, 0xff}
	cyclePink  = RGB{0xff, 0xb8, 0xff}
)

func TestStepCycle_WalksColors(t *testing.T) {
	c := NewStepCycle(8, cycleBlue, cycleWhite, cyclePink)
	if c.Period() != 24 {
		t.Errorf("Period() = %d, want 24", c.Period())
	}
	tests := []struct {
		tick uint64
		want RGB
	}{
		{0, cycleBlue},
		{7, cycleBlue},
		{8, cycleWhite},
		{15, cycleWhite},
		{16, cyclePink},
		{24, cycleBlue},
		{24*1000 + 9, cycleWhite},
	}
	for _, tt := range tests {
		if got := c.At(tt.tick); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.tick, got, tt.want)
		}
	}
}

func TestStepCycle_Step(t *testing.T) {
	c := NewStepCycle(2, cycleBlue, cycleWhite)
	want := []int{0, 0, 1, 1, 0, 0, 1}
	for tick, w := range want {
		if got := c.Step(uint64(tick)); got != w {
			t.Errorf("Step(%d) = %d, want %d", tick, got, w)
		}
	}
}

func TestSmoothCycle_Endpoints(t *testing.T) {
	c := NewSmoothCycle(10, ease.Linear, cycleBlue, cycleWhite)
	if got := c.At(0); got != cycleBlue {
		t.Errorf("At(0) = %v, want %v", got, cycleBlue)
	}
	if got := c.At(10); got != cycleWhite {
		t.Errorf("At(10) = %v, want %v", got, cycleWhite)
	}
}

func TestSmoothCycle_Midpoint(t *testing.T) {
	c := NewSmoothCycle(10, nil, cycleBlue, cycleWhite)
	mid := c.At(5)
	if mid == cycleBlue || mid == cycleWhite {
		t.Fatalf("At(5) = %v, want a blend", mid)
	}
	// Blue has the lower red channel; a blend sits strictly between.
	if mid.R <= cycleBlue.R || mid.R >= cycleWhite.R {
		t.Errorf("At(5).R = %d, want between %d and %d", mid.R, cycleBlue.R, cycleWhite.R)
	}
}

func TestColorCycle_SingleColor(t *testing.T) {
	c := NewSmoothCycle(4, nil, cyclePink)
	for tick := uint64(0); tick < 10; tick++ {
		if got := c.At(tick); got != cyclePink {
			t.Fatalf("At(%d) = %v, want %v", tick, got, cyclePink)
		}
	}
}

func TestColorCycle_InvalidPanics(t *testing.T) {
	expectPanic(t, "step ticks must be positive", func() { NewStepCycle(0, cycleBlue) })
	expectPanic(t, "at least one color", func() { NewStepCycle(4) })
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#2121ff", cycleBlue},
		{"2121FF", cycleBlue},
		{" #ffffff ", cycleWhite},
		{"#fff", cycleWhite},
	}
	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		if err != nil {
			t.Errorf("ParseRGB(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseRGB("#zzzzzz"); err == nil {
		t.Error("ParseRGB(#zzzzzz) returned no error")
	}
	expectPanic(t, "bad color", func() { MustRGB("blue") })
}

func BenchmarkSmoothCycle_At(b *testing.B) {
	c := NewSmoothCycle(8, nil, cycleBlue, cycleWhite, cyclePink)
	for i := 0; i < b.N; i++ {
		_ = c.At(uint64(i))
	}
}
