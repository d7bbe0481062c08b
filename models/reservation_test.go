package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range ValidStatuses {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus("CONFIRMED"))
	assert.False(t, IsValidStatus(""))
}

func TestMaxPartySizeFor(t *testing.T) {
	assert.Equal(t, 12, MaxPartySizeFor(false))
	assert.Equal(t, 30, MaxPartySizeFor(true))
}
