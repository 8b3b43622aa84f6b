package utils

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ToJSONValue converts a database value into something the JSON
// encoder renders the way tool callers expect: dates and timestamps as
// ISO-8601 strings, decimals as floats, uuids and byte slices as
// strings. Applied to every outbound row field.
func ToJSONValue(v interface{}) interface{} {
	switch x := v.(type) {
	case time.Time:
		return isoFormat(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return isoFormat(*x)
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		f, _ := x.Float64()
		return f
	case uuid.UUID:
		return x.String()
	case []byte:
		return string(x)
	default:
		return v
	}
}

func isoFormat(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02T15:04:05")
}

// RowsToJSON applies ToJSONValue to every field of every row.
func RowsToJSON(rows []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		m := make(map[string]interface{}, len(r))
		for k, v := range r {
			m[k] = ToJSONValue(v)
		}
		out = append(out, m)
	}
	return out
}
