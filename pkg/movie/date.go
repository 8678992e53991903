package movie

import (
	"strconv"
	"strings"
	"time"
)

const (
	// Placeholder is shown wherever a date or rating is unset.
	Placeholder = "-"

	layoutDisplay = "02/01/2006"
)

// DateCodec converts between the "dd/mm/yyyy" display form and timestamps in
// milliseconds since the epoch, using Location as the viewer's calendar.
type DateCodec struct {
	Location *time.Location
}

// Local is the codec used by the application; it follows the process time
// zone.
var Local = DateCodec{Location: time.Local}

// ParseDate parses text with the Local codec.
func ParseDate(text string) int64 {
	return Local.Parse(text)
}

// FormatDate formats ms with the Local codec.
func FormatDate(ms int64) string {
	return Local.Format(ms)
}

// Parse interprets text strictly as day/month/year. Any failure yields 0,
// which is also the "unset" value.
func (c DateCodec) Parse(text string) int64 {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return 0
	}
	day, ok := digits(parts[0], 1, 2)
	if !ok {
		return 0
	}
	month, ok := digits(parts[1], 1, 2)
	if !ok {
		return 0
	}
	year, ok := digits(parts[2], 4, 4)
	if !ok {
		return 0
	}
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return 0
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, c.location())
	// time.Date normalizes overflow (31/02 becomes 03/03); reject it.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return 0
	}
	return t.UnixMilli()
}

// Format renders ms as "dd/mm/yyyy". Timestamps at or before the epoch render
// as the placeholder.
func (c DateCodec) Format(ms int64) string {
	if ms <= 0 {
		return Placeholder
	}
	return time.UnixMilli(ms).In(c.location()).Format(layoutDisplay)
}

func (c DateCodec) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// digits parses s as an unsigned decimal with a length in [minLen, maxLen].
func digits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
