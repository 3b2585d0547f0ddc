package usage

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

// Unavailable is shown in place of a ratio whose denominator is zero.
const Unavailable = "unavailable"

var byteUnits = []string{"bytes", "KB", "MB", "GB"}

// FormatBytes renders a byte count with binary prefixes, one decimal place.
// Anything from 1024 GB upwards is shown in TB.
func FormatBytes(n float64) string {
	for _, unit := range byteUnits {
		if n < 1024 && n > -1024 {
			return fmt.Sprintf("%3.1f%s", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%3.1f%s", n, "TB")
}

// FormatCount renders an event count with thousands separators
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatCounter renders an unsigned kernel counter with thousands separators,
// including values beyond the int64 range
func FormatCounter(n uint64) string {
	if n <= math.MaxInt64 {
		return humanize.Comma(int64(n))
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// FormatRatio renders a ratio as a percentage with two decimals
func FormatRatio(ratio float64, ok bool) string {
	if !ok {
		return Unavailable
	}
	return fmt.Sprintf("%.2f%%", ratio*100)
}
