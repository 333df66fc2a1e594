package render

import (
	"encoding/json"
)

// BuildJSON serializes a response payload to JSON
func BuildJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
