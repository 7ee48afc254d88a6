package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	date := NewDate(2024, time.March, 15)

	t.Run("new expenses are active", func(t *testing.T) {
		e := NewExpense(42.50, "Food & Groceries", "weekly shop", date)
		assert.True(t, e.Active)
		assert.Equal(t, 42.50, e.Amount)
		assert.Equal(t, "Food & Groceries", e.Category)
		assert.Equal(t, "weekly shop", e.Description)
		assert.True(t, e.Date.Equal(date))
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		seen := make(map[uuid.UUID]bool)
		for i := 0; i < 100; i++ {
			e := NewExpense(1, "Other", "", date)
			assert.False(t, seen[e.ID], "duplicate identifier minted")
			seen[e.ID] = true
		}
	})
}

func TestExpenseJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := NewExpense(19.99, "Entertainment", "movie night", NewDate(2024, time.January, 2))
		original.Active = false

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Expense
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("date marshals as plain date", func(t *testing.T) {
		e := NewExpense(5, "Other", "", NewDate(2024, time.July, 4))
		data, err := json.Marshal(e)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"date":"2024-07-04"`)
	})

	t.Run("missing active flag defaults to true", func(t *testing.T) {
		raw := `{"id":"4f5b9f64-96ff-4788-a1b6-0c03c9f6e071","amount":12.5,"category":"Food & Groceries","description":"","date":"2024-03-15"}`

		var decoded Expense
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
		assert.True(t, decoded.Active)
		assert.Equal(t, 12.5, decoded.Amount)
	})

	t.Run("explicit false is preserved", func(t *testing.T) {
		raw := `{"id":"4f5b9f64-96ff-4788-a1b6-0c03c9f6e071","amount":12.5,"category":"Other","description":"","date":"2024-03-15","active":false}`

		var decoded Expense
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
		assert.False(t, decoded.Active)
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := NewDate(2023, time.December, 31)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2023-12-31"`, string(data))

		var decoded Date
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, d.Equal(decoded))
	})

	t.Run("accepts RFC3339 timestamps", func(t *testing.T) {
		var decoded Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-02-29T13:45:00Z"`), &decoded))
		assert.Equal(t, "2024-02-29", decoded.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var decoded Date
		assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
	})
}
