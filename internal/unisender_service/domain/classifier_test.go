package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		response Mapping
		want     bool
	}{
		{"result object", Mapping{"result": Mapping{"id": json.Number("123")}}, true},
		{"empty result object", Mapping{"result": Mapping{}}, true},
		{"empty result list", Mapping{"result": []any{}}, true},
		{"empty result string", Mapping{"result": ""}, true},
		{"result with success false", Mapping{"result": Mapping{}, "success": false}, true},
		{"success true", Mapping{"success": true}, true},
		{"success false", Mapping{"success": false}, false},
		{"success as string", Mapping{"success": "true"}, false},
		{"success as number", Mapping{"success": json.Number("1")}, false},
		{"null result", Mapping{"result": nil}, false},
		{"error only", Mapping{"error": "API Error"}, false},
		{"empty mapping", Mapping{}, false},
		{"nil mapping", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSuccess(tt.response))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	t.Run("error takes priority over message", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"error": "X", "message": "Y"})
		assert.True(t, ok)
		assert.Equal(t, "X", msg)
	})

	t.Run("message when no error", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"message": "Y"})
		assert.True(t, ok)
		assert.Equal(t, "Y", msg)
	})

	t.Run("absent when neither key present", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"success": true})
		assert.False(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("null error falls through to message", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"error": nil, "message": "Y"})
		assert.True(t, ok)
		assert.Equal(t, "Y", msg)
	})

	t.Run("empty string error is still present", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"error": "", "message": "Y"})
		assert.True(t, ok)
		assert.Equal(t, "", msg)
	})

	t.Run("non-string values are rendered", func(t *testing.T) {
		msg, ok := GetErrorMessage(Mapping{"error": json.Number("42")})
		assert.True(t, ok)
		assert.Equal(t, "42", msg)

		msg, ok = GetErrorMessage(Mapping{"error": Mapping{"field": "email"}})
		assert.True(t, ok)
		assert.JSONEq(t, `{"field":"email"}`, msg)
	})
}

func TestErrorCode(t *testing.T) {
	code, ok := ErrorCode(Mapping{"error": "Invalid API key", "code": "invalid_api_key"})
	assert.True(t, ok)
	assert.Equal(t, "invalid_api_key", code)

	_, ok = ErrorCode(Mapping{"error": "no code"})
	assert.False(t, ok)
}
