package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is a raw database row keyed by result column name (aliases included).
// Accessors are total: a missing, null or malformed value degrades to the
// documented default instead of an error, so projections never fail.
type Row map[string]any

// String returns the value as a string, or "" when absent or null.
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// StringPtr returns a pointer to the string value, or nil when the value is
// absent, null or empty. Empty strings map to nil so optional attributes
// serialize as JSON null.
func (r Row) StringPtr(col string) *string {
	s := r.String(col)
	if s == "" {
		return nil
	}
	return &s
}

// Float returns the value as a float64, or 0 when absent or unparseable.
func (r Row) Float(col string) float64 {
	f, ok := r.float(col)
	if !ok {
		return 0
	}
	return f
}

// FloatPtr returns a pointer to the float value, or nil when absent or
// unparseable.
func (r Row) FloatPtr(col string) *float64 {
	f, ok := r.float(col)
	if !ok {
		return nil
	}
	return &f
}

// IntPtr returns a pointer to the value truncated to int, or nil when absent
// or unparseable.
func (r Row) IntPtr(col string) *int {
	f, ok := r.float(col)
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}

func (r Row) float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case []byte:
		return parseFloat(string(t))
	case string:
		return parseFloat(t)
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
