package mediainfo

import (
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Private variables (alphabetical)

// timeLayouts lists the date and time shapes the library emits, tried in
// order. MediaInfo historically prefixed timestamps with "UTC"; newer
// builds emit ISO 8601.
var timeLayouts = []string{
	"UTC 2006-01-02 15:04:05.000",
	"UTC 2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"UTC 2006-01-02",
	"2006-01-02",
	"15:04:05.000",
	"15:04:05",
}

// Private functions (alphabetical)

// numericPrefix cuts the leading numeric run from a raw parameter value,
// dropping unit suffixes such as "24.000 fps" or "128000 bps". An empty
// result means the value did not start with a number.
func numericPrefix(value string) string {
	trimmed := strings.TrimSpace(value)
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
			continue
		case (r == '-' || r == '+') && i == 0:
			end = i + 1
			continue
		case r == '.' && !seenDot && seenDigit:
			seenDot = true
			end = i + 1
			continue
		}
		break
	}
	if !seenDigit {
		return ""
	}
	return trimmed[:end]
}

// parseBigInt coerces a raw value to a big integer, trimming any unit
// suffix first. Values such as unique IDs overflow int64.
func parseBigInt(value string) (*big.Int, bool) {
	prefix := numericPrefix(value)
	if prefix == "" {
		return nil, false
	}
	// Unique IDs are integral; drop a fractional part if one slipped in.
	if dot := strings.IndexByte(prefix, '.'); dot >= 0 {
		prefix = prefix[:dot]
	}
	n := new(big.Int)
	if _, ok := n.SetString(prefix, 10); !ok {
		return nil, false
	}
	return n, true
}

// parseBool coerces a raw value to a boolean. The library reports flags as
// "Yes" or "No"; only "Yes" is true.
func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "Yes")
}

// parseClockDuration coerces a clock-style offset such as "01:02:03.500"
// into a time.Duration. Menu chapter positions use this shape.
func parseClockDuration(value string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := time.Duration(0)
	for _, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || f < 0 {
			return 0, false
		}
		total = total*60 + time.Duration(f*float64(time.Second))
	}
	return total, true
}

// parseDurationMillis coerces a raw duration value, expressed by the
// library in milliseconds, into a time.Duration.
func parseDurationMillis(value string) (time.Duration, bool) {
	ms, ok := parseFloat(value)
	if !ok {
		return 0, false
	}
	return time.Duration(ms * float64(time.Millisecond)), true
}

// parseFloat coerces a raw value to a float64, trimming any unit suffix.
func parseFloat(value string) (float64, bool) {
	prefix := numericPrefix(value)
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseInt coerces a raw value to an int, trimming any unit suffix and
// truncating a fractional part.
func parseInt(value string) (int, bool) {
	n, ok := parseInt64(value)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// parseInt64 coerces a raw value to an int64, trimming any unit suffix and
// truncating a fractional part.
func parseInt64(value string) (int64, bool) {
	prefix := numericPrefix(value)
	if prefix == "" {
		return 0, false
	}
	if dot := strings.IndexByte(prefix, '.'); dot >= 0 {
		f, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTime coerces a raw value to a time.Time by trying the known layouts
// in order. The zero time and false are returned when nothing matches.
func parseTime(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseURL coerces a raw value to a URL. Empty and unparseable values
// return nil.
func parseURL(value string) *url.URL {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil
	}
	return u
}

// splitExtensions splits a format extension list, which the library
// reports space separated (e.g. "mkv mk3d mka mks").
func splitExtensions(value string) []string {
	return strings.Fields(value)
}

// splitList splits a multi-stream parameter value, which the library
// reports slash separated (e.g. "AAC / AC-3"). Entries are trimmed and
// empty entries dropped.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, "/")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
