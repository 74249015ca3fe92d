package component

import (
	"testing"
	"time"
)

func TestSanityClamp(t *testing.T) {
	tests := []struct {
		name    string
		drain   []float32
		restore []float32
		want    float32
	}{
		{"full", nil, nil, 100},
		{"partial drain", []float32{30}, nil, 70},
		{"overdrain clamps to zero", []float32{60, 60}, nil, 0},
		{"restore clamps to max", []float32{10}, []float32{50}, 100},
		{"negative drain ignored", []float32{-20}, nil, 100},
		{"negative restore ignored", []float32{40}, []float32{-5}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSanityState()
			for _, d := range tt.drain {
				if v := s.Drain(d); v < 0 || v > 100 {
					t.Fatalf("sanity %v out of range after drain", v)
				}
			}
			for _, r := range tt.restore {
				if v := s.Restore(r); v < 0 || v > 100 {
					t.Fatalf("sanity %v out of range after restore", v)
				}
			}
			if s.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", s.Value(), tt.want)
			}
		})
	}
}

func TestSanityFraction(t *testing.T) {
	s := NewSanityState()
	if s.Fraction() != 0 {
		t.Errorf("full sanity fraction = %v", s.Fraction())
	}
	s.Drain(25)
	if s.Fraction() != 0.25 {
		t.Errorf("fraction = %v, want 0.25", s.Fraction())
	}
	s.Drain(100)
	if s.Fraction() != 1 || !s.Depleted() {
		t.Errorf("depleted fraction = %v depleted=%v", s.Fraction(), s.Depleted())
	}
}

func TestDreadCursorMonotonic(t *testing.T) {
	script := NewDreadScript([]DreadLine{{"a", 1}, {"b", 2}, {"c", 3}}, TriggerTime, time.Second, 0, 0)
	var c DreadCursor

	prev := -1
	for i := 0; i < 5; i++ {
		_, idx, ok := c.Take(script)
		if ok {
			if idx <= prev {
				t.Fatalf("index went from %d to %d", prev, idx)
			}
			prev = idx
		}
		if c.Next() > script.Len() {
			t.Fatalf("cursor %d beyond length %d", c.Next(), script.Len())
		}
	}
	if !c.Exhausted(script) {
		t.Error("cursor should be exhausted")
	}
	if _, _, ok := c.Take(script); ok {
		t.Error("take after exhaustion returned a line")
	}
}

func TestDreadScriptCopiesLines(t *testing.T) {
	lines := []DreadLine{{"first", 5}}
	script := NewDreadScript(lines, TriggerDistance, 0, 4, 0)
	lines[0].Text = "changed"

	if script.Line(0).Text != "first" {
		t.Error("script shares storage with caller slice")
	}
}

func TestEmptyScriptExhausted(t *testing.T) {
	script := NewDreadScript(nil, TriggerTime, time.Second, 0, 0)
	var c DreadCursor
	if !c.Exhausted(script) {
		t.Error("empty script should start exhausted")
	}
}
