package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// IDList stores a set of warehouse ids as a comma separated column.
// Order is irrelevant and duplicates are not rejected here.
type IDList []SnowflakeID

func (l IDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(l))
	for _, id := range l {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ","), nil
}

func (l *IDList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot convert %v to IDList", value)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(IDList, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q in IDList: %w", p, err)
		}
		out = append(out, SnowflakeID(i))
	}
	*l = out
	return nil
}

func (l IDList) Contains(id SnowflakeID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
