// Package report renders profiles for terminals and JSON exports.
package report

import (
	"fmt"
	"time"
)

// FormatDate renders a date like "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// RelativeTime renders how long ago t was, relative to now.
func RelativeTime(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", seconds/86400)
	case seconds < 2592000:
		return fmt.Sprintf("%dw ago", seconds/604800)
	case seconds < 31536000:
		return fmt.Sprintf("%dmo ago", seconds/2592000)
	default:
		return fmt.Sprintf("%dy ago", seconds/31536000)
	}
}
