package models_test

import (
	"encoding/json"
	"testing"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMarshal(t *testing.T) {
	tests := []struct {
		name string
		id   models.ID
		want string
	}{
		{"numeric renders as number", models.NumericID(42), "42"},
		{"hex renders as string", models.HexID("64f1c2e8a4b0d23e9c8b4567"), `"64f1c2e8a4b0d23e9c8b4567"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestIDUnmarshal(t *testing.T) {
	var id models.ID

	require.NoError(t, json.Unmarshal([]byte("7"), &id))
	n, err := id.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n)

	require.NoError(t, json.Unmarshal([]byte(`"64f1c2e8a4b0d23e9c8b4567"`), &id))
	assert.Equal(t, "64f1c2e8a4b0d23e9c8b4567", id.String())
	_, err = id.Uint64()
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte("null"), &id))
	assert.True(t, id.IsZero())

	assert.Error(t, json.Unmarshal([]byte("-3"), &id))
}

func TestParseID(t *testing.T) {
	n, err := models.ParseID("15").Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(15), n)

	id := models.ParseID("64f1c2e8a4b0d23e9c8b4567")
	_, err = id.Uint64()
	assert.Error(t, err)
	assert.Equal(t, "64f1c2e8a4b0d23e9c8b4567", id.String())

	assert.True(t, models.ParseID("").IsZero())
}
