package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsValue(t *testing.T) {
	t.Run("compacts json", func(t *testing.T) {
		value, err := Items(`[ {"name": "Kebab", "qty": 2} ]`).Value()
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Kebab","qty":2}]`, value)
	})

	t.Run("missing becomes null", func(t *testing.T) {
		value, err := Items(nil).Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Items(`[{"name":`).Value()
		assert.Error(t, err)
	})
}

func TestItemsScan(t *testing.T) {
	var fromBytes Items
	require.NoError(t, fromBytes.Scan([]byte(`[{"name":"Tacos"}]`)))
	assert.JSONEq(t, `[{"name":"Tacos"}]`, string(fromBytes))

	var fromString Items
	require.NoError(t, fromString.Scan(`[1,2,3]`))
	assert.JSONEq(t, `[1,2,3]`, string(fromString))

	var fromNil Items
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad Items
	assert.Error(t, bad.Scan(42))
}

func TestItemsJSON(t *testing.T) {
	var order struct {
		Items Items `json:"items"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"items":[{"name":"Kebab","qty":2}]}`), &order))

	encoded, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"name":"Kebab","qty":2}]}`, string(encoded))

	require.NoError(t, json.Unmarshal([]byte(`{"items":null}`), &order))

	encoded, err = json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(encoded))
}
