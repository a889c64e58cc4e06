// Package output renders inspection results as text or JSON.
package output

import (
	"encoding/json"
)

// ToJSON serializes any inspection result.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
