package xspf

import "testing"

func TestDurationConversions(t *testing.T) {
	d := Duration(90500)

	if got := d.Millis(); got != 90500 {
		t.Errorf("Millis() = %d, want 90500", got)
	}
	if got := d.Seconds(); got != 90.5 {
		t.Errorf("Seconds() = %v, want 90.5", got)
	}
	if got := d.Minutes(); got != 90.5/60.0 {
		t.Errorf("Minutes() = %v, want %v", got, 90.5/60.0)
	}
}

func TestDurationTimecode(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{999, "00:00"}, // sub-second remainder truncated
		{1000, "00:01"},
		{59999, "00:59"},
		{60000, "01:00"},
		{90500, "01:30"},
		{205000, "03:25"},
		{6000000, "100:00"}, // minutes never wrap
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Duration(tt.ms).Timecode(); got != tt.want {
				t.Errorf("Duration(%d).Timecode() = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestDurationAdd(t *testing.T) {
	a := Duration(1000)
	b := Duration(2500)

	if got := a.Add(b); got != Duration(3500) {
		t.Errorf("Add() = %d, want 3500", got)
	}
	if got := a.AddMillis(250); got != Duration(1250) {
		t.Errorf("AddMillis() = %d, want 1250", got)
	}
	// Operands are untouched, Duration is a value type.
	if a != Duration(1000) {
		t.Errorf("Add mutated its receiver: %d", a)
	}
}

func TestDurationString(t *testing.T) {
	if got := Duration(205000).String(); got != "03:25" {
		t.Errorf("String() = %q, want timecode form", got)
	}
}
