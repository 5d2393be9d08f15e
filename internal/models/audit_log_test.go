package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    interface{}
		expected JSONBMap
	}{
		{
			name:     "set fields used",
			key:      "fields",
			value:    []string{"name", "dpi"},
			expected: JSONBMap{"fields": []string{"name", "dpi"}},
		},
		{
			name:     "set numeric value",
			key:      "rows_loaded",
			value:    532,
			expected: JSONBMap{"rows_loaded": 532},
		},
		{
			name:     "set boolean value",
			key:      "stale",
			value:    true,
			expected: JSONBMap{"stale": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &AuditLog{}
			log.SetMetadata(tt.key, tt.value)
			assert.NotNil(t, log.Metadata)
			assert.Equal(t, tt.expected, log.Metadata)
		})
	}
}

func TestAuditLog_GetMetadata(t *testing.T) {
	log := &AuditLog{
		Metadata: JSONBMap{"rows_loaded": float64(532), "stale": true},
	}

	assert.Equal(t, float64(532), log.GetMetadata("rows_loaded", 0))
	assert.Equal(t, true, log.GetMetadata("stale", false))
	assert.Equal(t, "default", log.GetMetadata("missing", "default"))
	assert.Equal(t, "default", (&AuditLog{}).GetMetadata("missing", "default"))
}

func TestAuditLog_String(t *testing.T) {
	log := &AuditLog{
		ConsoleID: "c-1",
		Operator:  "Juan",
		Action:    AuditActionLogin,
		Outcome:   AuditOutcomeSuccess,
		IPAddress: "192.168.1.1",
	}

	str := log.String()
	assert.Contains(t, str, "c-1")
	assert.Contains(t, str, "Juan")
	assert.Contains(t, str, "login")
	assert.Contains(t, str, "192.168.1.1")

	assert.Contains(t, (&AuditLog{}).String(), "anonymous")
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{}
	require.NoError(t, log.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	id := uuid.New()
	keep := &AuditLog{ID: id}
	require.NoError(t, keep.BeforeCreate(nil))
	assert.Equal(t, id, keep.ID)
}

func TestJSONBMap_ValueScan(t *testing.T) {
	v, err := JSONBMap{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = JSONBMap{"fields": "name"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"fields":"name"}`, v)

	var m JSONBMap
	require.NoError(t, m.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, JSONBMap{"a": float64(1)}, m)

	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	assert.Error(t, m.Scan(42))
}
