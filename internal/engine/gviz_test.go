package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/engine"
)

func TestUnwrap(t *testing.T) {
	payload, err := engine.Unwrap([]byte(gvizBody(`{"table":{}}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"table":{}}`, string(payload))

	// Exactly the wrapper, nothing inside.
	payload, err = engine.Unwrap([]byte(gvizBody("")))
	require.NoError(t, err)
	assert.Empty(t, payload)

	_, err = engine.Unwrap([]byte("/*O_o*/"))
	assert.ErrorIs(t, err, engine.ErrPayloadTooShort)
}

func TestDecodeTable_CellRendering(t *testing.T) {
	payload := `{"table":{"rows":[
		{"c":[{"v":"text"},null,{"v":null},{"v":8801712345678},{"v":2.5},{"v":true},{"v":false},{"v":[1,2]},{}]}
	]}}`

	rows, err := engine.DecodeTable([]byte(payload))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{"text", "", "", "8801712345678", "2.5", "true", "false", "[1,2]", ""}, rows[0])
}

func TestDecodeTable_RowOrderAndShape(t *testing.T) {
	payload := `{"table":{"rows":[{"c":[{"v":"a"}]},{"c":[]},{"c":[{"v":"b"},{"v":"c"}]}]}}`

	rows, err := engine.DecodeTable([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a"}, {}, {"b", "c"}}, rows)
}

func TestDecodeTable_Errors(t *testing.T) {
	_, err := engine.DecodeTable([]byte(`{"table":`))
	assert.ErrorIs(t, err, engine.ErrMalformedPayload)

	_, err = engine.DecodeTable([]byte(`{"table":{"rows":{}}}`))
	assert.ErrorIs(t, err, engine.ErrMissingRows)

	_, err = engine.DecodeTable([]byte(`{"status":"error","errors":[{"reason":"access_denied"}]}`))
	assert.ErrorIs(t, err, engine.ErrMissingRows)
}
