package model

import "fmt"

// FormatTimeSpent renders tracked minutes as "45m", "2h", or "2h 30m".
// A zero-minute remainder is never shown.
func FormatTimeSpent(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rem)
}

// FormatFileSize renders a byte count as "512 B", "24.0 KB", or "1.5 MB",
// switching units at 1024 and 1 MiB.
func FormatFileSize(bytes int64) string {
	const (
		kib = 1024
		mib = 1024 * 1024
	)
	switch {
	case bytes < kib:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mib:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kib)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mib)
	}
}
