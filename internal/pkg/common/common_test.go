package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBytes(t *testing.T) {
	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, ParseJSONBytes([]byte(`{"name":"ada","count":3}`), &out))
	assert.Equal(t, "ada", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestParseJSONBytesRejectsTrailingGarbage(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, ParseJSONBytes([]byte(`{"a":1} trailing`), &out))
	assert.Error(t, ParseJSONBytes([]byte(`{"a":1}{"b":2}`), &out))
}

func TestParseJSONBytesStrict(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSONBytesStrict([]byte(`{"name":"ada"}`), &out))
	assert.Error(t, ParseJSONBytesStrict([]byte(`{"name":"ada","extra":true}`), &out))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Please enter ingredients")
	assert.Equal(t, "Please enter ingredients", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestCustomErrorMessage(t *testing.T) {
	assert.Equal(t, "auth required", ErrUnauthorized.Error())

	wrapped := NewError(ErrCodeInternalError, "internal server error", 500, errors.New("db down"))
	assert.Equal(t, "db down", wrapped.Error())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "ada", NormalizeUsername("  Ada "))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
