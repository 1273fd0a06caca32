package utils

import (
	"strings"
	"testing"

	"pantry-tracker/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialUpdateSet(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		setClause, values, err := PartialUpdateSet(
			map[string]any{"description": "a root vegetable"},
			map[string]string{"description": "description"},
		)
		require.NoError(t, err)
		assert.Equal(t, `"description" = ?`, setClause)
		assert.Equal(t, []any{"a root vegetable"}, values)
	})

	t.Run("fragment count matches key count and values align", func(t *testing.T) {
		data := map[string]any{
			"firstName": "Aliya",
			"lastName":  "Smith",
			"email":     "aliya@example.com",
		}
		columns := map[string]string{
			"firstName": "first_name",
			"lastName":  "last_name",
			"email":     "email",
		}

		setClause, values, err := PartialUpdateSet(data, columns)
		require.NoError(t, err)

		fragments := strings.Split(setClause, ", ")
		require.Len(t, fragments, len(data))
		require.Len(t, values, len(data))

		// sorted key order: email, firstName, lastName
		assert.Equal(t, `"email" = ?`, fragments[0])
		assert.Equal(t, `"first_name" = ?`, fragments[1])
		assert.Equal(t, `"last_name" = ?`, fragments[2])
		assert.Equal(t, []any{"aliya@example.com", "Aliya", "Smith"}, values)
	})

	t.Run("field without translation keeps its name", func(t *testing.T) {
		setClause, values, err := PartialUpdateSet(
			map[string]any{"type": "spice"},
			map[string]string{},
		)
		require.NoError(t, err)
		assert.Equal(t, `"type" = ?`, setClause)
		assert.Equal(t, []any{"spice"}, values)
	})

	t.Run("nil value passes through as SET NULL", func(t *testing.T) {
		setClause, values, err := PartialUpdateSet(
			map[string]any{"description": nil},
			map[string]string{"description": "description"},
		)
		require.NoError(t, err)
		assert.Equal(t, `"description" = ?`, setClause)
		require.Len(t, values, 1)
		assert.Nil(t, values[0])
	})

	t.Run("empty mapping is rejected", func(t *testing.T) {
		_, _, err := PartialUpdateSet(map[string]any{}, nil)
		assert.ErrorIs(t, err, domain.ErrNoUpdateData)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		data := map[string]any{"b": 2, "a": 1, "c": 3}
		first, firstValues, err := PartialUpdateSet(data, nil)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			clause, values, err := PartialUpdateSet(data, nil)
			require.NoError(t, err)
			assert.Equal(t, first, clause)
			assert.Equal(t, firstValues, values)
		}
	})
}

func TestValidateUpdateFields(t *testing.T) {
	columns := map[string]string{"description": "description", "type": "type"}

	t.Run("known fields pass", func(t *testing.T) {
		err := ValidateUpdateFields(map[string]any{"type": "herb"}, columns)
		assert.NoError(t, err)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		err := ValidateUpdateFields(map[string]any{"name": "Basil"}, columns)
		assert.ErrorIs(t, err, domain.ErrUnknownUpdateField)
	})

	t.Run("empty mapping is rejected", func(t *testing.T) {
		err := ValidateUpdateFields(map[string]any{}, columns)
		assert.ErrorIs(t, err, domain.ErrNoUpdateData)
	})
}
