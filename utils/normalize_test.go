package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStringList(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, NormalizeStringList(nil))
	})

	t.Run("Equivalent Encodings", func(t *testing.T) {
		want := []string{"A", "B"}
		assert.Equal(t, want, NormalizeStringList([]string{"A", "B"}))
		assert.Equal(t, want, NormalizeStringList([]interface{}{"A", "B"}))
		assert.Equal(t, want, NormalizeStringList(`["A","B"]`))
		assert.Equal(t, want, NormalizeStringList("A,B"))
		assert.Equal(t, want, NormalizeStringList(" A , B "))
	})

	t.Run("Single Token", func(t *testing.T) {
		assert.Equal(t, []string{"PJ00001283"}, NormalizeStringList("PJ00001283"))
	})

	t.Run("Empty Tokens Dropped", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NormalizeStringList("A,,B,"))
	})

	t.Run("Order And Duplicates Preserved", func(t *testing.T) {
		assert.Equal(t, []string{"B", "A", "B"}, NormalizeStringList("B,A,B"))
	})

	t.Run("Malformed JSON Array Falls Back To CSV", func(t *testing.T) {
		assert.Equal(t, []string{`["A"`, `"B]`}, NormalizeStringList(`["A","B]`))
	})

	t.Run("Numeric Elements Stringified", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2"}, NormalizeStringList([]interface{}{float64(1), float64(2)}))
		assert.Equal(t, []string{"1", "2"}, NormalizeStringList("[1,2]"))
	})
}

func TestStringListUnmarshalJSON(t *testing.T) {
	type payload struct {
		IDs StringList `json:"ids"`
	}

	for _, body := range []string{
		`{"ids": ["A","B"]}`,
		`{"ids": "[\"A\",\"B\"]"}`,
		`{"ids": "A,B"}`,
	} {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(body), &p))
		assert.Equal(t, StringList{"A", "B"}, p.IDs, "body: %s", body)
	}

	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.Nil(t, p.IDs)
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-11-07")
	assert.NoError(t, err)
	assert.Equal(t, "2025-11-07", d.Format("2006-01-02"))

	_, err = ParseISODate("07/11/2025")
	assert.Error(t, err)

	_, err = ParseISODate("2025-13-40")
	assert.Error(t, err)
}
