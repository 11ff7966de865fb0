package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeIDJSONIsString(t *testing.T) {
	out, err := json.Marshal(SnowflakeID(1234567890123456789))
	require.NoError(t, err)
	assert.Equal(t, `"1234567890123456789"`, string(out))
}

func TestSnowflakeIDUnmarshalAcceptsBothForms(t *testing.T) {
	var fromString, fromNumber, fromEmpty SnowflakeID

	require.NoError(t, json.Unmarshal([]byte(`"42"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`42`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`""`), &fromEmpty))

	assert.EqualValues(t, 42, fromString)
	assert.EqualValues(t, 42, fromNumber)
	assert.Zero(t, fromEmpty)
}

func TestIDListRoundTrip(t *testing.T) {
	list := IDList{1, 2, 30}

	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "1,2,30", v)

	var back IDList
	require.NoError(t, back.Scan("1,2,30"))
	assert.Equal(t, list, back)
	assert.True(t, back.Contains(30))
	assert.False(t, back.Contains(3))
}

func TestIDListScanEmpty(t *testing.T) {
	var list IDList
	require.NoError(t, list.Scan(""))
	assert.Empty(t, list)
}
