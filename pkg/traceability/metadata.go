package traceability

import (
	"encoding/json"
)

// ExtractProductName pulls the "productName" string out of a raw metadata
// document for list views. It never fails: non-JSON text, non-object values,
// a missing key, or a non-string value all yield nil, so one malformed
// document cannot abort a whole page.
func ExtractProductName(metadata []byte) *string {
	var value interface{}
	if err := json.Unmarshal(metadata, &value); err != nil {
		return nil
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}

	name, ok := object["productName"].(string)
	if !ok {
		return nil
	}

	return &name
}
