// Package format provides the pure display formatting used by the listing
// pages: rounded and exact byte sizes, upload timestamps, and icon classes.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
	tib = 1 << 40
)

// Size converts a byte count to a rounded human-readable string.
// Thresholds are strict greater-than, so exactly 1 MiB renders as
// "1024.0 KiB". Existing clients depend on that boundary behaviour.
func Size(n int64) string {
	switch {
	case n > tib:
		return fmt.Sprintf("%.2f TiB", float64(n)/tib)
	case n > gib:
		return fmt.Sprintf("%.2f GiB", float64(n)/gib)
	case n > mib:
		return fmt.Sprintf("%.1f MiB", float64(n)/mib)
	case n > 4*kib:
		return fmt.Sprintf("%.1f KiB", float64(n)/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// ExactSize converts a byte count to a thousands-grouped exact string,
// e.g. "1,234,567 bytes".
func ExactSize(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	return humanize.Comma(n) + " bytes"
}

// Timestamp converts an upload time in epoch milliseconds to a fixed
// locale-independent string in UTC.
func Timestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}
