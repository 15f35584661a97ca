package stringy

import (
	"fmt"
)

// NanoSecondToHuman renders a nanosecond quantity with the largest unit
// that keeps the value above one.
func NanoSecondToHuman(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fs", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fms", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fus", v/1e3)
	}
	return fmt.Sprintf("%.1fns", v)
}
