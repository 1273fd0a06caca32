package utils

import (
	"fmt"
	"sort"
	"strings"

	"pantry-tracker/domain"
)

// PartialUpdateSet builds the SET clause of a single-row UPDATE from a map of
// logical field names to new values. columns translates a logical name to its
// storage column where the two differ (e.g. firstName -> first_name); fields
// without an entry keep their name. A nil value passes through as SET NULL,
// which is distinct from leaving the field out of data entirely.
//
// Fields are emitted in sorted key order so the clause and the bound values
// are deterministic and align index for index. An empty data map is rejected
// with domain.ErrNoUpdateData.
func PartialUpdateSet(data map[string]any, columns map[string]string) (string, []any, error) {
	if len(data) == 0 {
		return "", nil, domain.ErrNoUpdateData
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fragments := make([]string, 0, len(keys))
	values := make([]any, 0, len(keys))
	for _, k := range keys {
		col := k
		if mapped, ok := columns[k]; ok {
			col = mapped
		}
		fragments = append(fragments, fmt.Sprintf("%q = ?", col))
		values = append(values, data[k])
	}

	return strings.Join(fragments, ", "), values, nil
}

// ValidateUpdateFields rejects fields that are not in the entity's static
// column table, so a typo or a protected column never reaches the SQL layer.
func ValidateUpdateFields(data map[string]any, columns map[string]string) error {
	if len(data) == 0 {
		return domain.ErrNoUpdateData
	}
	for k := range data {
		if _, ok := columns[k]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownUpdateField, k)
		}
	}
	return nil
}
