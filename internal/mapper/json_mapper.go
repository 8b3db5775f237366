package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON and fromJSON convert between opaque snapshot maps and jsonb columns.
// Snapshots are user content the policy layer never inspects, so a corrupt
// blob maps to nil rather than failing the whole row.

func toJSON(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func fromJSON(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
