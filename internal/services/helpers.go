package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON marshals a value into a datatypes.JSON column. Nil slices become
// empty arrays so clients never see null where a list belongs.
func toJSON(v interface{}) datatypes.JSON {
	if s, ok := v.([]string); ok && s == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
