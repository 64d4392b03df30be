package ze

import (
	"fmt"
	"strconv"
	"strings"
)

// APIVersion packs a major and minor version as major<<16 | minor.
type APIVersion uint32

const (
	APIVersion1_0  = APIVersion(1<<16 | 0)
	APIVersion1_1  = APIVersion(1<<16 | 1)
	APIVersion1_2  = APIVersion(1<<16 | 2)
	APIVersion1_3  = APIVersion(1<<16 | 3)
	APIVersion1_4  = APIVersion(1<<16 | 4)
	APIVersion1_5  = APIVersion(1<<16 | 5)
	APIVersion1_6  = APIVersion(1<<16 | 6)
	APIVersion1_7  = APIVersion(1<<16 | 7)
	APIVersion1_8  = APIVersion(1<<16 | 8)
	APIVersion1_9  = APIVersion(1<<16 | 9)
	APIVersion1_10 = APIVersion(1<<16 | 10)
	APIVersion1_11 = APIVersion(1<<16 | 11)
	APIVersion1_12 = APIVersion(1<<16 | 12)
	APIVersion1_13 = APIVersion(1<<16 | 13)
	APIVersion1_14 = APIVersion(1<<16 | 14)

	APIVersionCurrent = APIVersion1_14
)

// MakeVersion builds an APIVersion from its parts.
func MakeVersion(major, minor uint16) APIVersion {
	return APIVersion(uint32(major)<<16 | uint32(minor))
}

func (v APIVersion) Major() uint16 { return uint16(v >> 16) }
func (v APIVersion) Minor() uint16 { return uint16(v & 0xffff) }

// String renders the version as "major.minor".
func (v APIVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// ParseAPIVersion parses "major.minor".
func ParseAPIVersion(s string) (APIVersion, error) {
	majorStr, minorStr, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return 0, fmt.Errorf("ze: invalid api version %q: want major.minor", s)
	}
	major, err := strconv.ParseUint(majorStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("ze: invalid api version %q: %w", s, err)
	}
	minor, err := strconv.ParseUint(minorStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("ze: invalid api version %q: %w", s, err)
	}
	return MakeVersion(uint16(major), uint16(minor)), nil
}
