// Package timefmt formats playback positions for display.
package timefmt

import (
	"fmt"
	"math"
	"time"
)

// Seconds formats a seconds value as M:SS.
// NaN, infinite and negative inputs are shown as 0:00.
func Seconds(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		sec = 0
	}
	total := int64(math.Floor(sec))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Duration formats d as M:SS.
func Duration(d time.Duration) string {
	return Seconds(d.Seconds())
}

// Pair formats "elapsed / total", the layout used by both player bars.
func Pair(elapsed, total time.Duration) string {
	return Duration(elapsed) + " / " + Duration(total)
}
