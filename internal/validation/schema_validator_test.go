package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

func TestSchemaValidator_VentureConfig(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{
			name: "full config",
			data: `{"enabled":true,"name":"Mill","profit_die":"d8","loss_die":"d6","loss_die_modifier":-1,
				"gold_per_point":100,"auto_cover_deficit":false,"auto_use_treasury":true,
				"natural_one_degrades":true,"success_threshold":3,"boons_text":"Guild Favor | 50 | +1 profit"}`,
		},
		{
			name: "empty object",
			data: `{}`,
		},
		{
			name:     "die off the ladder",
			data:     `{"profit_die":"d20"}`,
			wantErr:  true,
			errorMsg: "/profit_die",
		},
		{
			name:     "modifier out of range",
			data:     `{"loss_die_modifier":7}`,
			wantErr:  true,
			errorMsg: "maximum",
		},
		{
			name:     "negative rate",
			data:     `{"gold_per_point":-5}`,
			wantErr:  true,
			errorMsg: "minimum",
		},
		{
			name:     "unknown field",
			data:     `{"profit_dice":"d8"}`,
			wantErr:  true,
			errorMsg: "additionalProperties",
		},
		{
			name:     "wrong type",
			data:     `{"enabled":"yes"}`,
			wantErr:  true,
			errorMsg: "type",
		},
		{
			name:     "malformed json",
			data:     `{"enabled":`,
			wantErr:  true,
			errorMsg: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), VentureConfigSchema)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	path := filepath.Join(t.TempDir(), "venture.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profit_die":"d10"}`), 0o600))

	assert.NoError(t, v.ValidateFile(path, VentureConfigSchema))
	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), VentureConfigSchema))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nope.schema.json")

	assert.ErrorContains(t, err, "unknown schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), VentureConfigSchema))
	require.NoError(t, v.ValidateBytes([]byte(`{"enabled":false}`), VentureConfigSchema))

	assert.Len(t, v.schemas, 1)
}
