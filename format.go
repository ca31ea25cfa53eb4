package policyprism

import (
	"fmt"
	"math"
	"strconv"
)

// FormatBytes formats a byte count using binary unit steps (B, KB, MB),
// rounded to one decimal place with a trailing ".0" trimmed, e.g.
// 512 -> "512 B", 1536 -> "1.5 KB", 1048576 -> "1 MB".
func FormatBytes(n int) string {
	units := []string{"B", "KB", "MB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	rounded := math.Round(size*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[i]
}
