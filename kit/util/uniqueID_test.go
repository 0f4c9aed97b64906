package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSnowflakeIDBase62(t *testing.T) {
	first := GetSnowflakeIDBase62()
	second := GetSnowflakeIDBase62()

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestGetUUID(t *testing.T) {
	assert.Len(t, GetUUID(), 36)
	assert.NotEqual(t, GetUUID(), GetUUID())
}
