package stringy

import (
	"testing"
)

func TestNanoSecondToHuman(t *testing.T) {
	tests := []struct {
		ns   float64
		want string
	}{
		{500.0, "500.0ns"},
		{1500.0, "1.5us"},
		{1500000.0, "1.5ms"},
		{1500000000.0, "1.5s"},
		{90000000000.0, "90.0s"},
	}
	for _, tc := range tests {
		got := NanoSecondToHuman(tc.ns)
		if got != tc.want {
			t.Errorf("NanoSecondToHuman(%f) = %q, want %q", tc.ns, got, tc.want)
		}
	}
}
