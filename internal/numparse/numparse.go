// Package numparse supplies the numeric-string parsers spec.md assumes
// as an external collaborator (parse_uint(s, base) -> value | ParseError).
// Base 0 lets an operator write "0x..." or a plain decimal interchangeably.
package numparse

import (
	"fmt"
	"strconv"
)

// ParseUint parses s as an unsigned integer fitting bitSize bits.
func ParseUint(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer %q: %w", s, err)
	}
	return v, nil
}

// ParseInt parses s as a signed integer fitting bitSize bits.
func ParseInt(s string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid signed integer %q: %w", s, err)
	}
	return v, nil
}

// ParseBool parses s as one of {true,false,1,0}, the shape the CLI
// surface uses for phase-offset-monitor.
func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q: want true|false|1|0", s)
	}
}
