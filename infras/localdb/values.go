package localdb

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row values come back from SQLite as int64, float64 or string regardless of
// the declared column type. These helpers normalize them when decoding rows
// into domain models.

func String(row Row, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}

func Int(row Row, col string) int {
	switch v := row[col].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func Bool(row Row, col string) bool {
	switch v := row[col].(type) {
	case int64:
		return v != 0
	case bool:
		return v
	default:
		return false
	}
}

func Decimal(row Row, col string) decimal.Decimal {
	switch v := row[col].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return decimal.Zero
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func Time(row Row, col string) time.Time {
	s, ok := row[col].(string)
	if !ok || s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func TimePtr(row Row, col string) *time.Time {
	t := Time(row, col)
	if t.IsZero() {
		return nil
	}
	return &t
}
