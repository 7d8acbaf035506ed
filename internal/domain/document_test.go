package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_JSONRoundTrip(t *testing.T) {
	t.Run("round_trips_losslessly", func(t *testing.T) {
		type wrapper struct {
			Prefs Document `json:"preferences"`
		}
		in := wrapper{Prefs: Document(`{"style":"casual","sizes":[1,2]}`)}

		raw, err := json.Marshal(in)
		assert.NoError(t, err)

		var out wrapper
		assert.NoError(t, json.Unmarshal(raw, &out))
		assert.JSONEq(t, string(in.Prefs), string(out.Prefs))
	})

	t.Run("nil_serializes_as_null", func(t *testing.T) {
		raw, err := json.Marshal(Document(nil))
		assert.NoError(t, err)
		assert.Equal(t, "null", string(raw))
	})

	t.Run("null_deserializes_as_nil", func(t *testing.T) {
		var d Document
		assert.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.Nil(t, d)
	})
}

func TestDocument_SQL(t *testing.T) {
	t.Run("nil_stores_as_null", func(t *testing.T) {
		v, err := Document(nil).Value()
		assert.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scan_copies_bytes", func(t *testing.T) {
		src := []byte(`{"a":1}`)
		var d Document
		assert.NoError(t, d.Scan(src))
		src[0] = 'x'
		assert.JSONEq(t, `{"a":1}`, string(d))
	})

	t.Run("scan_nil_resets", func(t *testing.T) {
		d := Document(`{"a":1}`)
		assert.NoError(t, d.Scan(nil))
		assert.Nil(t, d)
	})
}
