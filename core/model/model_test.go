package model

import "testing"

func TestParseFloatOr(t *testing.T) {
	if v := ParseFloatOr("11.5", 9); v != 11.5 {
		t.Fatalf("expected 11.5 got %v", v)
	}
	if v := ParseFloatOr("", 9); v != 9 {
		t.Fatalf("expected default got %v", v)
	}
	if v := ParseFloatOr("abc", 35); v != 35 {
		t.Fatalf("expected default got %v", v)
	}
	if v := ParseFloatOr(" 12 ", 0); v != 12 {
		t.Fatalf("expected trimmed parse got %v", v)
	}
	if v := ParseFloatOr("0", 9); v != 0 {
		t.Fatalf("explicit zero must not fall back, got %v", v)
	}
}

func TestIdleMinutes(t *testing.T) {
	f := TripForm{
		IncludeIdleTime: true,
		IdleTimePerStop: 15,
		Stops:           []Stop{{Location: "a"}, {Location: "b"}},
	}
	if m := f.IdleMinutes(); m != 30 {
		t.Fatalf("expected 30 got %v", m)
	}
	f.IncludeIdleTime = false
	if m := f.IdleMinutes(); m != 0 {
		t.Fatalf("expected 0 got %v", m)
	}
	f.IncludeIdleTime = true
	f.Stops = nil
	if m := f.IdleMinutes(); m != 0 {
		t.Fatalf("expected 0 for no stops got %v", m)
	}
}

func TestAverageTirePressure(t *testing.T) {
	f := TripForm{
		TireCount: 4,
		Tires: []Tire{
			{Pressure: "30"}, {Pressure: "40"}, {Pressure: "35"}, {Pressure: "35"},
		},
	}
	if p := f.AverageTirePressure(); p != 35 {
		t.Fatalf("expected 35 got %v", p)
	}
	// Unreadable values are assumed at reference.
	f.Tires = []Tire{{Pressure: ""}, {Pressure: "x"}, {Pressure: "35"}, {Pressure: "35"}}
	if p := f.AverageTirePressure(); p != 35 {
		t.Fatalf("expected 35 got %v", p)
	}
	f.TireCount = 0
	f.Tires = nil
	if p := f.AverageTirePressure(); p != 0 {
		t.Fatalf("expected 0 for no tires got %v", p)
	}
}
