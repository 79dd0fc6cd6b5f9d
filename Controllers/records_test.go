package Controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursAcceptsNumberOrString(t *testing.T) {
	var input overtimeInput

	require.NoError(t, json.Unmarshal([]byte(`{"hours": 1.75}`), &input))
	assert.Equal(t, hoursString("1.75"), input.Hours)

	require.NoError(t, json.Unmarshal([]byte(`{"hours": "3"}`), &input))
	assert.Equal(t, hoursString("3"), input.Hours)

	assert.Error(t, json.Unmarshal([]byte(`{"hours": true}`), &input))
}
