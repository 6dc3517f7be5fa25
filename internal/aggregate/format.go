package aggregate

import (
	"time"

	"github.com/dustin/go-humanize"
)

const (
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders t with a named format ("full" or "medium"). Any
// other value is used as a time layout; an empty format means "medium".
func FormatDateTime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format(FullLayout)
	case "medium", "":
		return t.Format(MediumLayout)
	default:
		return t.Format(format)
	}
}

// RelativeTime describes start relative to now, e.g. "3 days ago" or
// "2 weeks from now".
func RelativeTime(start, now time.Time) string {
	return humanize.RelTime(start, now, "ago", "from now")
}
