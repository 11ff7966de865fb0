package mobiles

import "inventory-app/types"

// parseID converts a decimal id string; empty input yields the zero id.
func parseID(raw string) (types.SnowflakeID, error) {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
		return 0, err
	}
	return id, nil
}
