package model

import (
	"fmt"
	"strconv"
)

// Fact is a single observed statistic extracted from a dataset row.
// Facts are immutable: they are created during extraction and never modified.
type Fact struct {
	Location      string // e.g. "[ENTITY:country:FI]"
	LocationType  string // e.g. "country"
	Value         any    // float64 or string
	ValueType     string // colon-delimited type, e.g. "cphi:hicp2015:cp-hi00"
	Agent         string
	AgentType     string
	Timestamp     string // "2020" or "2020M04"
	TimestampType string // "year" or "month"
	Outlierness   float64
}

// Field returns the named fact field, or false if the name does not
// correspond to a simple field.
func (f Fact) Field(name string) (any, bool) {
	switch name {
	case "location":
		return f.Location, true
	case "location_type":
		return f.LocationType, true
	case "value":
		return f.Value, true
	case "value_type":
		return f.ValueType, true
	case "agent":
		return f.Agent, true
	case "agent_type":
		return f.AgentType, true
	case "timestamp":
		return f.Timestamp, true
	case "timestamp_type":
		return f.TimestampType, true
	case "outlierness":
		return f.Outlierness, true
	}
	return nil, false
}

// IsSimpleField reports whether name is a plain Fact field. Derived slot
// types such as "time" and "unit" are not simple fields.
func IsSimpleField(name string) bool {
	switch name {
	case "location", "location_type", "value", "value_type",
		"agent", "agent_type", "timestamp", "timestamp_type", "outlierness":
		return true
	}
	return false
}

// FormatValue renders an arbitrary fact value as a string. Floats that hold
// integral values render without a decimal part.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (f Fact) String() string {
	return fmt.Sprintf("Fact(%s, %s=%s, %s)", f.Location, f.ValueType, FormatValue(f.Value), f.Timestamp)
}
