package paginate

import (
	"maps"
	"strings"
)

// Special stage property values.
const (
	// DeleteValue removes the key from the derived item.
	DeleteValue = "/"

	// ReferencePrefix starts a back-reference to the original's front matter:
	// "$" copies the same key, "$name" (or "$.name") copies key "name".
	ReferencePrefix = "$"
)

// ApplyStage merges the stage overlay from base, with user's table for the
// same stage layered on top, into derived's front matter. Special values
// are resolved against original first. A nil value clears the key.
func ApplyStage(original, derived Item, stage Stage, base, user StageProperties) {
	props := make(Properties, len(base[stage])+len(user[stage]))
	maps.Copy(props, base[stage])
	maps.Copy(props, user[stage])

	if len(props) == 0 {
		return
	}

	data := derived.Data()
	for key, value := range props {
		if key == KeyPaginationInfo {
			data[key] = value
			continue
		}

		if s, ok := value.(string); ok {
			if s == DeleteValue {
				delete(data, key)
				continue
			}
			if field, ok := reference(s); ok {
				if field == "" {
					field = key
				}
				value = original.Data()[field]
			}
		}

		if value == nil {
			delete(data, key)
			continue
		}
		data[key] = value
	}
}

// reference parses a back-reference value and returns the referenced field,
// empty when the value refers to its own key.
func reference(s string) (string, bool) {
	field, ok := strings.CutPrefix(s, ReferencePrefix)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(field, "."), true
}
