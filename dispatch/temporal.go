package dispatch

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/lestrrat-go/strftime"
)

// Built-in pass-through patterns. Deliberately not ISO-8601: pass-through
// mode is for human-facing output; machine interchange keeps the engine's
// native rendering.
const (
	DefaultDatetimeFormat = "%Y-%m-%d %H:%M:%S"
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultTimeFormat     = "%H:%M:%S"
)

func isTemporal(v any) bool {
	switch v.(type) {
	case time.Time, civil.Date, civil.Time, civil.DateTime:
		return true
	}
	return false
}

// formatTemporal renders a temporal value with the directive pattern for
// its sub-kind, falling back to the sub-kind's built-in default. Each
// sub-kind resolves its pattern independently.
func (t *Table) formatTemporal(v any, _ int) (any, error) {
	switch x := v.(type) {
	case time.Time:
		return strftime.Format(pattern(t.dir.Datetime, DefaultDatetimeFormat), x)
	case civil.DateTime:
		return strftime.Format(pattern(t.dir.Datetime, DefaultDatetimeFormat), x.In(time.UTC))
	case civil.Date:
		return strftime.Format(pattern(t.dir.Date, DefaultDateFormat), x.In(time.UTC))
	case civil.Time:
		// Time-of-day carries no zone; anchor it to an arbitrary day.
		anchor := time.Date(1970, time.January, 1, x.Hour, x.Minute, x.Second, x.Nanosecond, time.UTC)
		return strftime.Format(pattern(t.dir.Time, DefaultTimeFormat), anchor)
	}
	return nil, &UnsupportedTypeError{TypeName: typeName(v)}
}

func pattern(p, def string) string {
	if p != "" {
		return p
	}
	return def
}

// renderNativeTemporal is the engine-native rendering: RFC 3339 for
// instants, ISO strings for civil values.
func renderNativeTemporal(v any, dir Directives) any {
	switch x := v.(type) {
	case time.Time:
		if dir.UTCZ {
			x = x.UTC()
		}
		if dir.OmitMicroseconds {
			return x.Format(time.RFC3339)
		}
		return x.Format(time.RFC3339Nano)
	case civil.Date:
		return x.String()
	case civil.Time:
		if dir.OmitMicroseconds {
			x.Nanosecond = 0
		}
		return x.String()
	case civil.DateTime:
		if dir.OmitMicroseconds {
			x.Time.Nanosecond = 0
		}
		return x.String()
	}
	return v
}
