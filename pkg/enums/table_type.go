package enums

import "fmt"

// TableType distinguishes regular seating from VIP seating.
type TableType string

const (
	TableTypeRegular TableType = "regular"
	TableTypeVIP     TableType = "vip"
)

var validTableTypes = []TableType{
	TableTypeRegular,
	TableTypeVIP,
}

// String implements fmt.Stringer.
func (t TableType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TableType.
func (t TableType) IsValid() bool {
	for _, candidate := range validTableTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTableType converts raw input into a TableType.
func ParseTableType(value string) (TableType, error) {
	for _, candidate := range validTableTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid table type %q", value)
}
